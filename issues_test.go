package gitdesktop

import (
	"strings"
	"testing"
)

func TestIssueMentionFilter(t *testing.T) {
	t.Parallel()

	f := NewIssueMentionFilter(testRepo)

	tests := []struct {
		name         string
		markup       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:   "issue number becomes link",
			markup: `fixes #42`,
			wantContains: []string{
				`fixes `,
				`<a class="issue-link" href="https://github.com/acme/app/issues/42">#42</a>`,
			},
		},
		{
			name:         "issue at start of text",
			markup:       `#7 is back`,
			wantContains: []string{`issues/7">#7</a> is back`},
		},
		{
			name:         "several issues in one node",
			markup:       `see #1 and #2`,
			wantContains: []string{`issues/1">#1</a>`, `issues/2">#2</a>`, ` and `},
		},
		{
			name:         "word-adjacent hash not matched",
			markup:       `ticket#12 is different`,
			wantContains: []string{`ticket#12 is different`},
			wantExcludes: []string{`issue-link`},
		},
		{
			name:         "hash without digits not matched",
			markup:       `a # alone and #tag`,
			wantExcludes: []string{`issue-link`},
		},
		{
			name:         "code spans untouched",
			markup:       `<code>#42</code>`,
			wantContains: []string{`<code>#42</code>`},
			wantExcludes: []string{`issue-link`},
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
