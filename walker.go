package gitdesktop

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TreeWalker is a preorder cursor over an html.Node tree, constrained by
// two predicates: accept decides whether a node is yielded, and descend
// decides whether an element's subtree is entered at all.
//
// The walker keeps its own stack of pending nodes instead of navigating
// live sibling links. A node's children are pushed at the moment the node
// is popped, before the caller can act on it, so the successor of every
// yielded node is captured before any mutation. Removing the yielded node
// cannot lose the cursor, and replacement nodes spliced in before it are
// never pushed, so they are not revisited within the same pass.
type TreeWalker struct {
	stack   []*html.Node
	accept  func(*html.Node) bool
	descend func(*html.Node) bool
}

// NewTreeWalker creates a walker over root's subtree. The root itself is
// not yielded. Nil predicates accept everything and descend everywhere.
func NewTreeWalker(root *html.Node, accept, descend func(*html.Node) bool) *TreeWalker {
	w := &TreeWalker{accept: accept, descend: descend}
	w.pushChildren(root)
	return w
}

// Next advances the cursor and returns the next accepted node in document
// order, or nil when the traversal is exhausted.
func (w *TreeWalker) Next() *html.Node {
	for len(w.stack) > 0 {
		n := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if n.Type == html.ElementNode && (w.descend == nil || w.descend(n)) {
			w.pushChildren(n)
		}

		if w.accept == nil || w.accept(n) {
			return n
		}
	}
	return nil
}

// pushChildren pushes n's children in reverse so they pop in document order.
func (w *TreeWalker) pushChildren(n *html.Node) {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for i := len(children) - 1; i >= 0; i-- {
		w.stack = append(w.stack, children[i])
	}
}

// defaultTextExclusions are elements whose text must never be rewritten:
// code is literal, and anchors are already links (rewriting their text
// would nest links or re-match already-converted mentions).
var defaultTextExclusions = []atom.Atom{atom.Pre, atom.Code, atom.A}

// TextWalker returns a walker yielding text nodes outside the excluded
// elements (defaults to pre, code, and a when none are given). Exclusion
// is by subtree: the walker never descends into an excluded element.
func TextWalker(root *html.Node, excluded ...atom.Atom) *TreeWalker {
	if len(excluded) == 0 {
		excluded = defaultTextExclusions
	}
	return NewTreeWalker(root,
		func(n *html.Node) bool { return n.Type == html.TextNode },
		func(n *html.Node) bool { return !isAnyElement(n, excluded) },
	)
}

// ElementWalker returns a walker yielding elements with the given tag,
// skipping subtrees of pre and code. Matched elements are not descended
// into: a filter that replaces the element must not also be handed nodes
// from the subtree it is about to discard.
func ElementWalker(root *html.Node, tag atom.Atom) *TreeWalker {
	return NewTreeWalker(root,
		func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == tag },
		func(n *html.Node) bool { return !isAnyElement(n, []atom.Atom{atom.Pre, atom.Code, tag}) },
	)
}

func isAnyElement(n *html.Node, atoms []atom.Atom) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range atoms {
		if n.DataAtom == a {
			return true
		}
	}
	return false
}
