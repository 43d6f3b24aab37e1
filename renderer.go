package gitdesktop

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Compile-time interface implementation checks.
// These ensure every filter satisfies NodeFilter at compile time,
// catching signature mismatches before runtime.
var (
	_ NodeFilter = (*EmojiFilter)(nil)
	_ NodeFilter = (*IssueMentionFilter)(nil)
	_ NodeFilter = (*CommitMentionFilter)(nil)
	_ NodeFilter = (*MentionFilter)(nil)
	_ NodeFilter = (*TeamMentionFilter)(nil)
	_ NodeFilter = (*VideoLinkFilter)(nil)
	_ Resolver   = (*StaticResolver)(nil)
)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	repo         *Repository
	set          *EmojiSet
	resolver     Resolver
	extraFilters []NodeFilter
	highlighting bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRepository scopes issue, commit, mention, and video filters to repo.
// Without a repository only the emoji filter runs.
func WithRepository(repo *Repository) RendererOption {
	return func(r *Renderer) { r.cfg.repo = repo }
}

// WithEmojiSet enables the emoji filter over the given set.
func WithEmojiSet(set *EmojiSet) RendererOption {
	return func(r *Renderer) { r.cfg.set = set }
}

// WithResolver supplies mention metadata lookups. Without a resolver the
// user and team mention filters are omitted from the pipeline.
func WithResolver(resolver Resolver) RendererOption {
	return func(r *Renderer) { r.cfg.resolver = resolver }
}

// WithExtraFilters appends custom filters after the built-in pipeline.
func WithExtraFilters(filters ...NodeFilter) RendererOption {
	return func(r *Renderer) { r.cfg.extraFilters = append(r.cfg.extraFilters, filters...) }
}

// WithoutHighlighting disables chroma syntax highlighting of code blocks.
func WithoutHighlighting() RendererOption {
	return func(r *Renderer) { r.cfg.highlighting = false }
}

// Renderer converts markdown to enriched HTML: Goldmark produces the
// initial tree, then the node-filter pipeline rewrites emoji, mentions,
// issue and commit references, and video links in place.
type Renderer struct {
	cfg     rendererConfig
	md      goldmark.Markdown
	builder *Builder
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithRepository, WithEmojiSet).
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{cfg: rendererConfig{highlighting: true}}
	for _, opt := range opts {
		opt(r)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if r.cfg.highlighting {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes for external stylesheet control
			),
		))
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used; enrichment happens
			// on the parsed tree, never by splicing raw markup.
		),
	)
	r.builder = NewBuilder(r.cfg.resolver)
	return r
}

// Render converts markdown to an enriched HTML fragment.
// The context is used for cancellation and covers filter lookups.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}

	htmlContent, err := r.toHTML(ctx, markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	return r.Filter(ctx, htmlContent)
}

// Filter applies the node-filter pipeline to already-parsed markup,
// skipping markdown conversion. Useful when the host caches the HTML
// stage separately.
func (r *Renderer) Filter(ctx context.Context, markup string) (string, error) {
	filters := r.builder.Build(r.cfg.set, r.cfg.repo)
	if len(r.cfg.extraFilters) > 0 {
		filters = append(append([]NodeFilter{}, filters...), r.cfg.extraFilters...)
	}
	return FilterMarkup(ctx, markup, filters)
}

// toHTML converts markdown to an HTML fragment. Supports context
// cancellation via goroutine + select pattern since Goldmark doesn't
// natively support context.
func (r *Renderer) toHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
