package gitdesktop

import (
	"context"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mention patterns capture the character before the @ so that emails and
// path-like text ("a@b", "src/@x") never match. The boundary character is
// re-emitted as literal text ahead of the mention link.
var (
	mentionPattern = regexp.MustCompile(`(^|[^\w@/])@([a-zA-Z0-9][a-zA-Z0-9-]*)`)
	teamPattern    = regexp.MustCompile(`(^|[^\w@/])@([a-zA-Z0-9][a-zA-Z0-9-]*)/([a-zA-Z0-9][a-zA-Z0-9_-]*)`)
)

// MentionFilter rewrites @login text into mention links for logins the
// resolver knows. Unknown logins stay literal text.
//
// This is the most general mention matcher and must run after
// TeamMentionFilter; otherwise it would consume the "@org" prefix of a
// team mention and leave "/team" behind as text.
type MentionFilter struct {
	repo     *Repository
	resolver Resolver
}

// NewMentionFilter creates a MentionFilter scoped to the repository's
// endpoint.
func NewMentionFilter(repo *Repository, resolver Resolver) *MentionFilter {
	return &MentionFilter{repo: repo, resolver: resolver}
}

// Walker yields text nodes outside pre, code, and anchor elements.
func (f *MentionFilter) Walker(root *html.Node) *TreeWalker {
	return TextWalker(root)
}

// Filter replaces each resolvable @login with a mention link. Resolver
// errors abort the pipeline run.
func (f *MentionFilter) Filter(ctx context.Context, node *html.Node) ([]*html.Node, error) {
	return replaceTextSpans(ctx, node, mentionPattern, func(ctx context.Context, m []string) ([]*html.Node, error) {
		boundary, login := m[1], m[2]

		account, err := f.resolver.ResolveUser(ctx, login)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, nil
		}

		link := elementNode(atom.A,
			"class", "user-mention",
			"href", f.repo.endpointURL()+"/"+account.Login,
		)
		link.AppendChild(textNode("@" + account.Login))

		nodes := []*html.Node{link}
		if boundary != "" {
			nodes = append([]*html.Node{textNode(boundary)}, nodes...)
		}
		return nodes, nil
	})
}

// TeamMentionFilter rewrites @org/team text into team mention links for
// teams the resolver knows. It must precede MentionFilter in the pipeline.
type TeamMentionFilter struct {
	repo     *Repository
	resolver Resolver
}

// NewTeamMentionFilter creates a TeamMentionFilter scoped to the
// repository's endpoint.
func NewTeamMentionFilter(repo *Repository, resolver Resolver) *TeamMentionFilter {
	return &TeamMentionFilter{repo: repo, resolver: resolver}
}

// Walker yields text nodes outside pre, code, and anchor elements.
func (f *TeamMentionFilter) Walker(root *html.Node) *TreeWalker {
	return TextWalker(root)
}

// Filter replaces each resolvable @org/team with a team mention link.
func (f *TeamMentionFilter) Filter(ctx context.Context, node *html.Node) ([]*html.Node, error) {
	return replaceTextSpans(ctx, node, teamPattern, func(ctx context.Context, m []string) ([]*html.Node, error) {
		boundary, org, slug := m[1], m[2], m[3]

		team, err := f.resolver.ResolveTeam(ctx, org, slug)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, nil
		}

		link := elementNode(atom.A,
			"class", "team-mention",
			"href", f.repo.endpointURL()+"/orgs/"+team.Org+"/teams/"+team.Slug,
		)
		link.AppendChild(textNode("@" + team.Org + "/" + team.Slug))

		nodes := []*html.Node{link}
		if boundary != "" {
			nodes = append([]*html.Node{textNode(boundary)}, nodes...)
		}
		return nodes, nil
	})
}
