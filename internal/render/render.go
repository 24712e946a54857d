// Package render turns the frozen site configuration into the values the
// static-site generator's templates consume: head metadata, navigation
// links, and the search widget context. The configuration is passed in
// explicitly; nothing here reads ambient global state.
package render

import "github.com/docfoundry/docsite/pkg/siteconfig"

// MetaTag is a single name/content pair for the generated page <head>.
type MetaTag struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NavLink is a labeled external link for navigation and footer rendering.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SearchContext is the widget bootstrap embedded in generated pages when
// search is enabled.
type SearchContext struct {
	AppID     string `json:"appId"`
	APIKey    string `json:"apiKey"`
	IndexName string `json:"indexName"`
}

// BuildContext is the full JSON-marshalable view of the configuration a
// generator embeds into its build.
type BuildContext struct {
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Meta        []MetaTag      `json:"meta"`
	NavLinks    []NavLink      `json:"navLinks"`
	Search      *SearchContext `json:"search,omitempty"`
}

// HeadMeta returns the metadata tags for the page <head>. Empty SEO fields
// produce no tags; pages then rely on their own frontmatter.
func HeadMeta(cfg siteconfig.Config) []MetaTag {
	meta := make([]MetaTag, 0, 3)
	seo := cfg.SEO()

	if seo.Description != "" {
		meta = append(meta,
			MetaTag{Name: "description", Content: seo.Description},
			MetaTag{Name: "og:description", Content: seo.Description},
		)
	}
	if seo.Title != "" {
		meta = append(meta, MetaTag{Name: "og:title", Content: seo.Title})
	}

	return meta
}

// NavLinks returns the community links for navigation and footer.
func NavLinks(cfg siteconfig.Config) []NavLink {
	return []NavLink{
		{Label: "GitHub", URL: cfg.GitHub()},
		{Label: "Discord", URL: cfg.Discord()},
	}
}

// NewBuildContext assembles the full build view. Search is present exactly
// when all Algolia credentials are configured.
func NewBuildContext(cfg siteconfig.Config) BuildContext {
	ctx := BuildContext{
		Title:       cfg.SEO().Title,
		Description: cfg.SEO().Description,
		Meta:        HeadMeta(cfg),
		NavLinks:    NavLinks(cfg),
	}

	if cfg.SearchEnabled() {
		a := cfg.Algolia()
		ctx.Search = &SearchContext{
			AppID:     a.AppID,
			APIKey:    a.APIKey,
			IndexName: a.IndexName,
		}
	}

	return ctx
}
