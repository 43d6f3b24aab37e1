package gitdesktop

import (
	"context"

	"golang.org/x/net/html"
)

// NodeFilter transforms individual nodes of a parsed document tree.
//
// A filter contributes two things: a scoped traversal over exactly the
// nodes it is willing to examine, and a match operation that maps one of
// those nodes to its replacement sequence. Filters must not mutate the
// tree themselves; the executor owns all splicing so that traversal
// cursors stay valid while nodes are replaced.
type NodeFilter interface {
	// Walker returns a cursor yielding, in document order, the nodes this
	// filter examines. The walker's predicates are the filter's contract:
	// Filter is never called with a node the walker would not yield.
	Walker(root *html.Node) *TreeWalker

	// Filter examines node and returns the ordered, non-empty sequence of
	// nodes that should replace it: unmatched prefix, transformed content,
	// unmatched suffix, any of which may be absent. A nil slice means no
	// match. The context covers lookups (user/team resolution, encoding);
	// an error aborts the whole pipeline run.
	Filter(ctx context.Context, node *html.Node) ([]*html.Node, error)
}
