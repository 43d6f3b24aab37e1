package gitdesktop

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/yuin/goldmark-emoji/definition"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Gottsteinji/gitdesktop/internal/yamlutil"
)

// emojiPattern matches :shortcode: sequences like :+1: or :heavy_check_mark:.
var emojiPattern = regexp.MustCompile(`:([a-z0-9+_-]+):`)

// EmojiSet maps emoji shortcodes to image asset paths. Shortcodes without
// an asset fall back to their unicode character from the standard GitHub
// emoji table, when one exists.
type EmojiSet struct {
	assets   map[string]string
	fallback definition.Emojis
}

// NewEmojiSet creates an EmojiSet from a shortcode-to-asset-path mapping.
// The mapping is copied; later mutation of the argument has no effect.
func NewEmojiSet(assets map[string]string) *EmojiSet {
	copied := make(map[string]string, len(assets))
	for k, v := range assets {
		copied[k] = v
	}
	return &EmojiSet{assets: copied, fallback: definition.Github()}
}

// LoadEmojiSet reads a YAML shortcode-to-asset-path mapping from path.
func LoadEmojiSet(path string) (*EmojiSet, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmojiSetParse, err)
	}
	var assets map[string]string
	if err := yamlutil.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmojiSetParse, err)
	}
	return NewEmojiSet(assets), nil
}

// Asset returns the asset path for shortcode, if one is mapped.
func (s *EmojiSet) Asset(shortcode string) (string, bool) {
	path, ok := s.assets[shortcode]
	return path, ok
}

// Unicode returns the unicode character for shortcode from the standard
// emoji table, if one exists.
func (s *EmojiSet) Unicode(shortcode string) (string, bool) {
	e, ok := s.fallback.Get(shortcode)
	if !ok || len(e.Unicode) == 0 {
		return "", false
	}
	return string(e.Unicode), true
}

// EmojiFilter rewrites :shortcode: text into emoji <img> nodes, or plain
// unicode text when the set maps no asset for the shortcode.
type EmojiFilter struct {
	set *EmojiSet
}

// NewEmojiFilter creates an EmojiFilter over the given set.
func NewEmojiFilter(set *EmojiSet) *EmojiFilter {
	return &EmojiFilter{set: set}
}

// Walker yields text nodes outside pre, code, and anchor elements.
func (f *EmojiFilter) Walker(root *html.Node) *TreeWalker {
	return TextWalker(root)
}

// Filter replaces every known :shortcode: in the text node. Unknown
// shortcodes stay literal; a node with only unknown shortcodes is no match.
func (f *EmojiFilter) Filter(ctx context.Context, node *html.Node) ([]*html.Node, error) {
	return replaceTextSpans(ctx, node, emojiPattern, func(_ context.Context, m []string) ([]*html.Node, error) {
		shortcode := m[1]
		if path, ok := f.set.Asset(shortcode); ok {
			img := elementNode(atom.Img,
				"class", "emoji",
				"src", path,
				"alt", m[0],
				"title", m[0],
			)
			return []*html.Node{img}, nil
		}
		if unicode, ok := f.set.Unicode(shortcode); ok {
			return []*html.Node{textNode(unicode)}, nil
		}
		return nil, nil
	})
}
