package gitdesktop

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testRenderer(opts ...RendererOption) *Renderer {
	base := []RendererOption{
		WithRepository(&Repository{Owner: "acme", Name: "app"}),
		WithEmojiSet(testEmoji()),
		WithResolver(testResolver()),
	}
	return NewRenderer(append(base, opts...)...)
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		markdown     string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:     "emoji and mention with surrounding text preserved",
			markdown: `check :+1: with @alice`,
			wantContains: []string{
				`check <img class="emoji" src="/assets/thumbsup.png"`,
				`with <a class="user-mention" href="https://github.com/alice">@alice</a>`,
			},
		},
		{
			name:         "issue reference in a list",
			markdown:     "- closes #42\n- nothing else",
			wantContains: []string{`issues/42">#42</a>`, `nothing else`},
		},
		{
			name:         "commit sha in prose",
			markdown:     `bisected to deadbee1 overnight`,
			wantContains: []string{`commit/deadbee1">deadbee</a>`, ` overnight`},
		},
		{
			name:         "fenced code block stays literal",
			markdown:     "```\n:+1: @alice #42\n```",
			wantContains: []string{`:+1: @alice #42`},
			wantExcludes: []string{`user-mention`, `issue-link`, `class="emoji"`},
		},
		{
			name:         "inline code stays literal",
			markdown:     "use `@alice` here",
			wantContains: []string{`<code>@alice</code>`},
			wantExcludes: []string{`user-mention`},
		},
		{
			name:         "markdown structure intact",
			markdown:     "# Title\n\nbody :+1:",
			wantContains: []string{`<h1`, `Title`, `/assets/thumbsup.png`},
		},
		{
			name:         "authored link text not re-filtered",
			markdown:     `[@alice did this](https://example.com/post)`,
			wantContains: []string{`href="https://example.com/post">@alice did this</a>`},
			wantExcludes: []string{`user-mention`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := testRenderer().Render(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
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

func TestRendererEmptyMarkdown(t *testing.T) {
	t.Parallel()

	_, err := testRenderer().Render(context.Background(), "")
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestRendererCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testRenderer().Render(ctx, "# hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRendererResolverFailureAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("lookup exploded")
	r := NewRenderer(
		WithRepository(&Repository{Owner: "acme", Name: "app"}),
		WithResolver(&failingResolver{err: boom}),
	)

	out, err := r.Render(context.Background(), `cc @alice`)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if out != "" {
		t.Errorf("partial output returned alongside error: %q", out)
	}
}

func TestRendererWithExtraFilters(t *testing.T) {
	t.Parallel()

	r := NewRenderer(WithExtraFilters(&uppercaseFilter{}))
	out, err := r.Render(context.Background(), `quiet text`)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "QUIET TEXT") {
		t.Errorf("extra filter not applied:\n%s", out)
	}
}

func TestRendererFilterSkipsMarkdownStage(t *testing.T) {
	t.Parallel()

	out, err := testRenderer().Filter(context.Background(), `<p>see #9</p>`)
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	if !strings.Contains(out, `issues/9">#9</a>`) {
		t.Errorf("markup not filtered:\n%s", out)
	}
	if strings.Contains(out, "<p><p>") {
		t.Errorf("markup re-wrapped:\n%s", out)
	}
}
