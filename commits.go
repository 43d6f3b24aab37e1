package gitdesktop

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// commitPattern matches full or abbreviated commit SHAs (7 to 40 hex
// characters) on word boundaries.
var commitPattern = regexp.MustCompile(`\b([0-9a-f]{7,40})\b`)

// shortSHALength is the display length for linked commit SHAs.
const shortSHALength = 7

// CommitMentionFilter rewrites commit SHAs into commit links scoped to the
// repository, shortening the link text to the abbreviated SHA.
type CommitMentionFilter struct {
	repo *Repository
}

// NewCommitMentionFilter creates a CommitMentionFilter for repo.
func NewCommitMentionFilter(repo *Repository) *CommitMentionFilter {
	return &CommitMentionFilter{repo: repo}
}

// Walker yields text nodes outside pre, code, and anchor elements.
func (f *CommitMentionFilter) Walker(root *html.Node) *TreeWalker {
	return TextWalker(root)
}

// Filter replaces each SHA-looking token with a commit link. Tokens with
// no digit are left literal: every hex-only English word ("defaced",
// "beefcafe") would otherwise become a link, while real abbreviated SHAs
// virtually always contain a digit.
func (f *CommitMentionFilter) Filter(ctx context.Context, node *html.Node) ([]*html.Node, error) {
	return replaceTextSpans(ctx, node, commitPattern, func(_ context.Context, m []string) ([]*html.Node, error) {
		sha := m[1]
		if !strings.ContainsAny(sha, "0123456789") {
			return nil, nil
		}

		link := elementNode(atom.A,
			"class", "commit-link",
			"href", f.repo.HTMLURL()+"/commit/"+sha,
		)
		link.AppendChild(textNode(sha[:shortSHALength]))
		return []*html.Node{link}, nil
	})
}
