// Package gitdesktop implements the markdown enrichment core shared by the
// desktop client: a node-filter pipeline that rewrites parsed HTML into rich
// nodes (emoji images, issue/commit/user/team mention links, video embeds).
//
// # Quick Start
//
// Create a renderer, render markdown, and read the enriched HTML:
//
//	r := gitdesktop.NewRenderer(
//	    gitdesktop.WithRepository(&gitdesktop.Repository{Owner: "acme", Name: "app"}),
//	    gitdesktop.WithEmojiSet(set),
//	    gitdesktop.WithResolver(resolver),
//	)
//
//	out, err := r.Render(ctx, "fixed in deadbeef1 :tada: thanks @alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Filter Pipeline
//
// Enrichment runs in two stages:
//
//  1. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  2. Node filtering: each NodeFilter walks the parsed tree in document
//     order and splices replacement nodes in place of matched ones
//
// Filter order is correctness-relevant configuration, not an optimization:
// the team mention filter runs before the generic user mention filter so
// that "@org/team" is consumed whole, and the video filter runs last so it
// sees links produced by earlier filters. A Builder returns the canonical
// order and memoizes the most recent (emoji set, repository) pair.
//
// Custom filters implement NodeFilter and can be appended with
// WithExtraFilters, or applied directly over markup with FilterMarkup.
//
// # Related Subsystems
//
// The dateformat package provides locale-aware date formatting with a
// bounded formatter cache. The dispatcher package provides the error
// handler chain wrapped around the application dispatcher.
package gitdesktop
