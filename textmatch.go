package gitdesktop

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// spanReplacer maps one regexp match (the full submatch slice, as from
// FindStringSubmatch) to the nodes standing in for the matched span. A nil
// slice leaves the span as literal text; an error aborts the pass.
type spanReplacer func(ctx context.Context, m []string) ([]*html.Node, error)

// replaceTextSpans scans a text node with re and builds the replacement
// sequence for the whole node: literal text between matches is preserved
// as text nodes, matched spans are replaced via the replacer. Returns nil
// when nothing was replaced, which the executor treats as no match.
//
// Adjacent literal spans (including spans the replacer declined) are
// merged into single text nodes so the output tree stays compact.
func replaceTextSpans(ctx context.Context, node *html.Node, re *regexp.Regexp, replace spanReplacer) ([]*html.Node, error) {
	text := node.Data
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil, nil
	}

	var (
		out      []*html.Node
		literal  strings.Builder
		replaced bool
		pos      int
	)

	flushLiteral := func() {
		if literal.Len() > 0 {
			out = append(out, textNode(literal.String()))
			literal.Reset()
		}
	}

	for _, idx := range matches {
		start, end := idx[0], idx[1]
		literal.WriteString(text[pos:start])
		pos = end

		m := make([]string, 0, len(idx)/2)
		for g := 0; g < len(idx); g += 2 {
			if idx[g] < 0 {
				m = append(m, "")
				continue
			}
			m = append(m, text[idx[g]:idx[g+1]])
		}

		nodes, err := replace(ctx, m)
		if err != nil {
			return nil, err
		}
		if nodes == nil {
			// Span declined: keep it literal.
			literal.WriteString(text[start:end])
			continue
		}

		flushLiteral()
		out = append(out, nodes...)
		replaced = true
	}

	if !replaced {
		return nil, nil
	}

	literal.WriteString(text[pos:])
	flushLiteral()
	return out, nil
}
