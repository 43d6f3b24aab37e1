package gitdesktop

import (
	"context"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// issuePattern matches #123 references. The leading boundary character is
// captured and re-emitted so "ticket#12" or "&#39;" never match.
var issuePattern = regexp.MustCompile(`(^|[^\w&])#([0-9]+)\b`)

// IssueMentionFilter rewrites #123 text into issue links scoped to the
// repository.
type IssueMentionFilter struct {
	repo *Repository
}

// NewIssueMentionFilter creates an IssueMentionFilter for repo.
func NewIssueMentionFilter(repo *Repository) *IssueMentionFilter {
	return &IssueMentionFilter{repo: repo}
}

// Walker yields text nodes outside pre, code, and anchor elements.
func (f *IssueMentionFilter) Walker(root *html.Node) *TreeWalker {
	return TextWalker(root)
}

// Filter replaces each #number with a link into the repository's issues.
func (f *IssueMentionFilter) Filter(ctx context.Context, node *html.Node) ([]*html.Node, error) {
	return replaceTextSpans(ctx, node, issuePattern, func(_ context.Context, m []string) ([]*html.Node, error) {
		boundary, number := m[1], m[2]

		link := elementNode(atom.A,
			"class", "issue-link",
			"href", f.repo.HTMLURL()+"/issues/"+number,
		)
		link.AppendChild(textNode("#" + number))

		nodes := []*html.Node{link}
		if boundary != "" {
			nodes = append([]*html.Node{textNode(boundary)}, nodes...)
		}
		return nodes, nil
	})
}
