package gitdesktop

import (
	"strings"
	"testing"
)

func TestVideoLinkFilter(t *testing.T) {
	t.Parallel()

	f := NewVideoLinkFilter(testRepo)

	const attachment = "https://user-images.githubusercontent.com/123/demo.mp4"

	tests := []struct {
		name         string
		markup       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:   "autolinked attachment becomes video embed",
			markup: `<p><a href="` + attachment + `">` + attachment + `</a></p>`,
			wantContains: []string{
				`<video class="video-embed" controls=""`,
				`<source src="` + attachment + `" type="video/mp4"`,
			},
			wantExcludes: []string{`<a `},
		},
		{
			name:         "authored link text preserved",
			markup:       `<a href="` + attachment + `">watch the demo</a>`,
			wantContains: []string{`>watch the demo</a>`},
			wantExcludes: []string{`<video`},
		},
		{
			name:         "non-video link untouched",
			markup:       `<a href="https://user-images.githubusercontent.com/1/x.png">https://user-images.githubusercontent.com/1/x.png</a>`,
			wantExcludes: []string{`<video`},
		},
		{
			name:         "untrusted host untouched",
			markup:       `<a href="https://evil.example/demo.mp4">https://evil.example/demo.mp4</a>`,
			wantExcludes: []string{`<video`},
		},
		{
			name:         "non-https untouched",
			markup:       `<a href="http://user-images.githubusercontent.com/1/demo.mp4">http://user-images.githubusercontent.com/1/demo.mp4</a>`,
			wantExcludes: []string{`<video`},
		},
		{
			name:         "webm gets matching content type",
			markup:       `<a href="https://user-images.githubusercontent.com/1/clip.webm">https://user-images.githubusercontent.com/1/clip.webm</a>`,
			wantContains: []string{`type="video/webm"`},
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

func TestVideoLinkFilterTrustsEndpointHost(t *testing.T) {
	t.Parallel()

	f := NewVideoLinkFilter(&Repository{
		Owner:    "acme",
		Name:     "app",
		Endpoint: "https://ghe.acme.test",
	})

	link := "https://ghe.acme.test/storage/demo.mov"
	out := filterOne(t, f, `<a href="`+link+`">`+link+`</a>`)
	if !strings.Contains(out, `type="video/quicktime"`) {
		t.Errorf("endpoint-hosted video not embedded:\n%s", out)
	}
}
