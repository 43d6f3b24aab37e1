package gitdesktop

import (
	"context"
	"fmt"
	"strings"
)

// DefaultEndpoint is the HTML base URL used when a Repository leaves
// Endpoint empty.
const DefaultEndpoint = "https://github.com"

// Repository identifies the remote repository that scopes issue, commit,
// and mention resolution.
type Repository struct {
	Owner    string
	Name     string
	Endpoint string // HTML base URL, e.g. "https://github.com" (optional)
}

// Validate checks that required fields are present.
// Returns nil if r is nil (nil means no repository context).
func (r *Repository) Validate() error {
	if r == nil {
		return nil
	}
	if r.Owner == "" || r.Name == "" {
		return fmt.Errorf("%w: got %q/%q", ErrInvalidRepository, r.Owner, r.Name)
	}
	return nil
}

// Slug returns "owner/name".
func (r *Repository) Slug() string {
	return r.Owner + "/" + r.Name
}

// HTMLURL returns the web URL of the repository.
func (r *Repository) HTMLURL() string {
	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return strings.TrimSuffix(endpoint, "/") + "/" + r.Slug()
}

// endpointURL returns the bare endpoint for account-level URLs.
func (r *Repository) endpointURL() string {
	if r.Endpoint == "" {
		return DefaultEndpoint
	}
	return strings.TrimSuffix(r.Endpoint, "/")
}

// Account is a user or organization known to the Resolver.
type Account struct {
	Login string
	Name  string
}

// Team is an organization team known to the Resolver.
type Team struct {
	Org  string
	Slug string
}

// Resolver supplies mention metadata to filters. Implementations may hit a
// local cache or an API client; the pipeline only requires that lookups are
// available at filter time.
//
// Lookups return (nil, nil) when the login/team is unknown: unknown is a
// no-match, not an error. A non-nil error aborts the whole pipeline run.
type Resolver interface {
	ResolveUser(ctx context.Context, login string) (*Account, error)
	ResolveTeam(ctx context.Context, org, slug string) (*Team, error)
}

// StaticResolver resolves mentions from fixed in-memory sets. Used by the
// CLI and tests; the desktop app injects an API-backed implementation.
type StaticResolver struct {
	Users map[string]Account // keyed by lowercase login
	Teams map[string]Team    // keyed by lowercase "org/slug"
}

// NewStaticResolver creates a StaticResolver from user logins and
// "org/slug" team identifiers.
func NewStaticResolver(users []string, teams []string) *StaticResolver {
	r := &StaticResolver{
		Users: make(map[string]Account, len(users)),
		Teams: make(map[string]Team, len(teams)),
	}
	for _, login := range users {
		r.Users[strings.ToLower(login)] = Account{Login: login}
	}
	for _, t := range teams {
		org, slug, ok := strings.Cut(t, "/")
		if !ok {
			continue
		}
		r.Teams[strings.ToLower(t)] = Team{Org: org, Slug: slug}
	}
	return r
}

// ResolveUser returns the known account for login, or nil if unknown.
func (r *StaticResolver) ResolveUser(_ context.Context, login string) (*Account, error) {
	if a, ok := r.Users[strings.ToLower(login)]; ok {
		return &a, nil
	}
	return nil, nil
}

// ResolveTeam returns the known team for org/slug, or nil if unknown.
func (r *StaticResolver) ResolveTeam(_ context.Context, org, slug string) (*Team, error) {
	if t, ok := r.Teams[strings.ToLower(org+"/"+slug)]; ok {
		return &t, nil
	}
	return nil, nil
}
