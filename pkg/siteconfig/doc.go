// Package siteconfig provides the frozen site-wide configuration value
// consumed by the static-site build: SEO metadata, community links, and
// Algolia search credentials.
//
// The configuration is constructed exactly once, at build start, and is
// immutable for the lifetime of the process. Immutability is enforced at
// construction rather than by convention: Config carries only unexported
// fields, is read through accessor methods, and is handed to consumers by
// value. There is no setter to call and no pointer to share, so the value
// has exactly one state (initialized-and-frozen) and is safe for any number
// of concurrent readers without locking.
//
// # Usage
//
//	cfg, err := siteconfig.New(siteconfig.Params{
//	    SEO:     siteconfig.SEO{Title: "My Docs", Description: "Docs for My Project"},
//	    GitHub:  "https://github.com/org/repo",
//	    Discord: "https://discord.com/invite/abc123",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if cfg.SearchEnabled() {
//	    // initialize the search widget with cfg.Algolia()
//	}
//
// Empty strings are legal values, not missing values: empty SEO fields fall
// back at the template layer, and empty Algolia credentials disable search.
// Construction is all-or-nothing; a Params value that fails shape validation
// produces a *ShapeError and no usable Config.
package siteconfig
