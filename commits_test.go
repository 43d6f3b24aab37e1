package gitdesktop

import (
	"strings"
	"testing"
)

func TestCommitMentionFilter(t *testing.T) {
	t.Parallel()

	f := NewCommitMentionFilter(testRepo)

	tests := []struct {
		name         string
		markup       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:   "short SHA becomes link",
			markup: `reverted in deadbee1`,
			wantContains: []string{
				`reverted in `,
				`<a class="commit-link" href="https://github.com/acme/app/commit/deadbee1">deadbee</a>`,
			},
		},
		{
			name:   "full SHA shortened to seven characters",
			markup: `see 0123456789abcdef0123456789abcdef01234567`,
			wantContains: []string{
				`commit/0123456789abcdef0123456789abcdef01234567">0123456</a>`,
			},
		},
		{
			name:         "hex-looking English word not linked",
			markup:       `the wall was defaced badly`,
			wantContains: []string{`the wall was defaced badly`},
			wantExcludes: []string{`commit-link`},
		},
		{
			name:         "too-short hex not matched",
			markup:       `abc123 is only six`,
			wantExcludes: []string{`commit-link`},
		},
		{
			name:         "uppercase hex not matched",
			markup:       `DEADBEE1 is not a sha here`,
			wantExcludes: []string{`commit-link`},
		},
		{
			name:         "sha inside word not matched",
			markup:       `xdeadbee1y`,
			wantExcludes: []string{`commit-link`},
		},
		{
			name:         "code spans untouched",
			markup:       `<code>deadbee1</code>`,
			wantContains: []string{`<code>deadbee1</code>`},
			wantExcludes: []string{`commit-link`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filterOne(t, f, tt.markup)
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(out, exclude) {
					t.Errorf("output still contains %q:\n%s", exclude, out)
				}
			}
		})
	}
}
