package gitdesktop

import (
	"context"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// videoContentTypes maps playable file extensions to source MIME types.
var videoContentTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
}

// defaultVideoHost serves user-uploaded attachment videos.
const defaultVideoHost = "user-images.githubusercontent.com"

// VideoLinkFilter rewrites autolinked video URLs into <video> embeds.
//
// It runs last in the pipeline, over anchors rather than text, so it sees
// links produced by the markdown autolinker and earlier filters and never
// double-processes them: only bare autolinks (anchor text equal to the
// href) pointing at a video file on a trusted host are converted.
type VideoLinkFilter struct {
	hosts map[string]bool
}

// NewVideoLinkFilter creates a VideoLinkFilter trusting the attachment
// host and the repository's own endpoint host.
func NewVideoLinkFilter(repo *Repository) *VideoLinkFilter {
	hosts := map[string]bool{defaultVideoHost: true}
	if repo != nil {
		if u, err := url.Parse(repo.endpointURL()); err == nil && u.Host != "" {
			hosts[u.Host] = true
		}
	}
	return &VideoLinkFilter{hosts: hosts}
}

// Walker yields anchor elements outside pre and code, without descending
// into the anchors themselves.
func (f *VideoLinkFilter) Walker(root *html.Node) *TreeWalker {
	return ElementWalker(root, atom.A)
}

// Filter replaces a qualifying autolink anchor with a <video> element.
func (f *VideoLinkFilter) Filter(_ context.Context, node *html.Node) ([]*html.Node, error) {
	href := attrValue(node, "href")
	if href == "" || !f.isVideoURL(href) {
		return nil, nil
	}

	// Only bare autolinks: a single text child equal to the href. Anything
	// else is an authored link whose text must be preserved.
	text := node.FirstChild
	if text == nil || text.NextSibling != nil || text.Type != html.TextNode || text.Data != href {
		return nil, nil
	}

	video := elementNode(atom.Video, "class", "video-embed", "controls", "")
	source := elementNode(atom.Source, "src", href, "type", videoContentTypes[extensionOf(href)])
	video.AppendChild(source)
	return []*html.Node{video}, nil
}

// isVideoURL reports whether href points at a playable video on a trusted
// host over https.
func (f *VideoLinkFilter) isVideoURL(href string) bool {
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "https" || !f.hosts[u.Host] {
		return false
	}
	_, ok := videoContentTypes[extensionOf(href)]
	return ok
}

func extensionOf(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
