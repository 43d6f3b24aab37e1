package gitdesktop

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BuildPipeline returns the canonical filter sequence for an emoji set and
// repository context. Either argument may be nil; repository-scoped filters
// (issues, commits, mentions, video) are only included when a repository
// and resolver are present.
//
// Order is deliberate. The team mention filter precedes the user mention
// filter so "@org/team" is consumed whole rather than half-eaten as a
// "@org" mention, and the video filter runs last so it sees anchors
// produced by earlier passes instead of raw text.
func BuildPipeline(set *EmojiSet, repo *Repository, resolver Resolver) []NodeFilter {
	var filters []NodeFilter
	if set != nil {
		filters = append(filters, NewEmojiFilter(set))
	}
	if repo != nil {
		filters = append(filters, NewIssueMentionFilter(repo), NewCommitMentionFilter(repo))
		if resolver != nil {
			filters = append(filters,
				NewTeamMentionFilter(repo, resolver),
				NewMentionFilter(repo, resolver),
			)
		}
		filters = append(filters, NewVideoLinkFilter(repo))
	}
	return filters
}

// Builder memoizes the most recent pipeline built by BuildPipeline.
//
// Renders recur with an unchanged (emoji set, repository) pair, and filter
// construction captures lookup tables, so the last result is cached and
// reused until either argument changes. Only one slot is kept: the desktop
// client renders for one repository context at a time, in sequence. The
// mutex makes the slot safe if a host builds from multiple goroutines; it
// does not widen the cache.
type Builder struct {
	resolver Resolver

	mu       sync.Mutex
	lastSet  *EmojiSet
	lastRepo *Repository
	last     []NodeFilter
}

// NewBuilder creates a Builder. resolver may be nil, which disables
// mention filters in every built pipeline.
func NewBuilder(resolver Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build returns the filter sequence for (set, repo), rebuilding only when
// the pair differs from the previous call. The emoji set is compared by
// identity and the repository by value, so repeated calls with the same
// arguments return the same filter instances.
func (b *Builder) Build(set *EmojiSet, repo *Repository) []NodeFilter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.last != nil && set == b.lastSet && repoEqual(repo, b.lastRepo) {
		return b.last
	}

	b.lastSet = set
	b.lastRepo = repo
	b.last = BuildPipeline(set, repo, b.resolver)
	return b.last
}

func repoEqual(a, b *Repository) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ApplyFilters runs each filter over the tree in sequence, splicing
// replacement nodes in place of matched ones.
//
// Filters run strictly one after another, never concurrently: later
// filters must see the output of earlier ones (the video filter inspects
// anchors created by the mention filters, and must not double-process
// them). Within one pass the successor of the current node is read from
// the walker before the node is touched, replacements are inserted before
// the node, and only then is the node removed, so surrounding document
// order is preserved and no transient duplication is visible to the next
// filter.
//
// The first filter error aborts the run and propagates to the caller; no
// partial result is salvaged.
func ApplyFilters(ctx context.Context, root *html.Node, filters []NodeFilter) error {
	for _, f := range filters {
		w := f.Walker(root)
		node := w.Next()
		for node != nil {
			next := w.Next() // successor before any splice

			replacements, err := f.Filter(ctx, node)
			if err != nil {
				return err
			}
			if replacements != nil {
				if err := splice(node, replacements); err != nil {
					return err
				}
			}

			node = next
		}
	}
	return nil
}

// splice replaces node with the replacement sequence, inserting before
// removing so there is no window where the content is absent.
func splice(node *html.Node, replacements []*html.Node) error {
	parent := node.Parent
	if parent == nil {
		return fmt.Errorf("%w: cannot splice %q", ErrDetachedNode, node.Data)
	}
	for _, r := range replacements {
		parent.InsertBefore(r, node)
	}
	parent.RemoveChild(node)
	return nil
}

// FilterMarkup parses markup, applies the filters, and serializes the
// result. Both full documents and fragments are accepted; fragments are
// rendered back without a wrapping <html><body>.
func FilterMarkup(ctx context.Context, markup string, filters []NodeFilter) (string, error) {
	root, isFragment, err := parseMarkup(markup)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkupParse, err)
	}

	if err := ApplyFilters(ctx, root, filters); err != nil {
		return "", err
	}

	return renderMarkup(root, isFragment)
}

// parseMarkup parses HTML content, handling both full documents and
// fragments. Returns the parsed root and whether it was a fragment.
func parseMarkup(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderMarkup serializes the tree back to a string. Fragments render
// children only, avoiding an added <html><body> wrapper.
func renderMarkup(root *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", fmt.Errorf("%w: %v", ErrMarkupRender, err)
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkupRender, err)
	}
	return buf.String(), nil
}

// textNode returns a new text node with the given content.
func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// elementNode returns a new element node with the given tag and attributes.
// Attributes are key/value pairs.
func elementNode(tag atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}
