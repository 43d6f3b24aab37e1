package gitdesktop

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragmentT parses markup as a body fragment, failing the test on error.
func parseFragmentT(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, _, err := parseMarkup(markup)
	if err != nil {
		t.Fatalf("parseMarkup(%q) error: %v", markup, err)
	}
	return root
}

func collectText(w *TreeWalker) []string {
	var out []string
	for n := w.Next(); n != nil; n = w.Next() {
		out = append(out, n.Data)
	}
	return out
}

func TestTextWalker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{
			name:   "plain text yielded",
			markup: `hello world`,
			want:   []string{"hello world"},
		},
		{
			name:   "document order across elements",
			markup: `<p>one <em>two</em> three</p><p>four</p>`,
			want:   []string{"one ", "two", " three", "four"},
		},
		{
			name:   "code content excluded",
			markup: `before <code>:+1:</code> after`,
			want:   []string{"before ", " after"},
		},
		{
			name:   "pre subtree excluded entirely",
			markup: `<pre>line <span>nested</span></pre>tail`,
			want:   []string{"tail"},
		},
		{
			name:   "anchor text excluded",
			markup: `see <a href="/x">@alice</a> here`,
			want:   []string{"see ", " here"},
		},
		{
			name:   "deeply nested exclusion",
			markup: `<p><code><b>deep</b></code>kept</p>`,
			want:   []string{"kept"},
		},
		{
			name:   "empty tree",
			markup: ``,
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := parseFragmentT(t, tt.markup)
			got := collectText(TextWalker(root))

			if len(got) != len(tt.want) {
				t.Fatalf("yielded %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("node %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestElementWalker(t *testing.T) {
	t.Parallel()

	root := parseFragmentT(t, `<p><a href="/1">x</a></p><code><a href="/2">y</a></code><a href="/3">z</a>`)

	var hrefs []string
	w := ElementWalker(root, atom.A)
	for n := w.Next(); n != nil; n = w.Next() {
		hrefs = append(hrefs, attrValue(n, "href"))
	}

	want := []string{"/1", "/3"}
	if strings.Join(hrefs, ",") != strings.Join(want, ",") {
		t.Errorf("anchors = %v, want %v", hrefs, want)
	}
}

// Removing the yielded node must not lose the cursor: the successor is
// captured on the walker's stack before the caller mutates anything.
func TestTreeWalkerSurvivesRemoval(t *testing.T) {
	t.Parallel()

	root := parseFragmentT(t, `<p>one</p><p>two</p><p>three</p>`)

	var visited []string
	w := TextWalker(root)
	for n := w.Next(); n != nil; n = w.Next() {
		visited = append(visited, n.Data)
		// Replace the current node, as the executor does.
		parent := n.Parent
		parent.InsertBefore(textNode("["+n.Data+"]"), n)
		parent.RemoveChild(n)
	}

	want := "one,two,three"
	if got := strings.Join(visited, ","); got != want {
		t.Errorf("visited = %q, want %q", got, want)
	}

	out, err := renderMarkup(root, true)
	if err != nil {
		t.Fatalf("renderMarkup error: %v", err)
	}
	if out != `<p>[one]</p><p>[two]</p><p>[three]</p>` {
		t.Errorf("tree after mutation = %q", out)
	}
}

// Nodes spliced in before the cursor are replacements and must not be
// revisited within the same pass; a filter whose output still matches its
// own pattern would otherwise loop forever.
func TestTreeWalkerSkipsInsertedReplacements(t *testing.T) {
	t.Parallel()

	root := parseFragmentT(t, `<p>grow</p>`)

	visits := 0
	w := TextWalker(root)
	for n := w.Next(); n != nil; n = w.Next() {
		visits++
		if visits > 10 {
			t.Fatal("walker revisited replacement nodes")
		}
		parent := n.Parent
		// Replacement content that would match again if revisited.
		parent.InsertBefore(textNode(n.Data+n.Data), n)
		parent.RemoveChild(n)
	}

	if visits != 1 {
		t.Errorf("visits = %d, want 1", visits)
	}
}
