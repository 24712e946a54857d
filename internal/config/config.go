// Package config loads the site configuration file and produces the frozen
// siteconfig.Config value handed to the rest of the build.
//
// The on-disk format is HCL:
//
//	github  = "https://github.com/org/repo"
//	discord = "https://discord.com/invite/abc123"
//
//	seo {
//	  title       = "My Docs"
//	  description = "Docs for My Project"
//	}
//
//	algolia {
//	  app_id     = "APPID"
//	  index_name = "docs"
//	}
//
// Algolia credentials may also come from the environment (DOCSITE_ALGOLIA_*),
// which takes precedence over the file so secrets stay out of checked-in
// configuration. A missing credential is not an error; incomplete credentials
// disable search.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/docfoundry/docsite/pkg/siteconfig"
)

// DefaultPath is the site configuration file looked up when no -config flag
// is given.
const DefaultPath = "site.hcl"

// Environment variables overriding the algolia block. The API key in
// particular should come from here rather than the file.
const (
	EnvAlgoliaAppID     = "DOCSITE_ALGOLIA_APP_ID"
	EnvAlgoliaAPIKey    = "DOCSITE_ALGOLIA_API_KEY"
	EnvAlgoliaIndexName = "DOCSITE_ALGOLIA_INDEX_NAME"
)

// File mirrors the on-disk structure of site.hcl. All attributes are
// optional at the syntax level; required-field enforcement happens in
// siteconfig.New so every shape problem is reported through one error.
type File struct {
	GitHub  string        `hcl:"github,optional"`
	Discord string        `hcl:"discord,optional"`
	SEO     *SEOBlock     `hcl:"seo,block"`
	Algolia *AlgoliaBlock `hcl:"algolia,block"`
}

// SEOBlock is the seo {} block.
type SEOBlock struct {
	Title       string `hcl:"title,optional"`
	Description string `hcl:"description,optional"`
}

// AlgoliaBlock is the algolia {} block.
type AlgoliaBlock struct {
	AppID     string `hcl:"app_id,optional"`
	APIKey    string `hcl:"api_key,optional"`
	IndexName string `hcl:"index_name,optional"`
}

// Load reads path from the OS filesystem and returns the frozen
// configuration value.
func Load(path string) (siteconfig.Config, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS is Load against an arbitrary filesystem.
func LoadFS(fs afero.Fs, path string) (siteconfig.Config, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return siteconfig.Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return siteconfig.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f File
	if err := hclsimple.Decode(path, src, nil, &f); err != nil {
		return siteconfig.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return f.Build()
}

// Build applies environment overrides and constructs the frozen value.
func (f *File) Build() (siteconfig.Config, error) {
	p := siteconfig.Params{
		GitHub:  f.GitHub,
		Discord: f.Discord,
	}

	if f.SEO != nil {
		p.SEO = siteconfig.SEO{
			Title:       f.SEO.Title,
			Description: f.SEO.Description,
		}
	}

	if f.Algolia != nil {
		p.Algolia = siteconfig.Algolia{
			AppID:     f.Algolia.AppID,
			APIKey:    f.Algolia.APIKey,
			IndexName: f.Algolia.IndexName,
		}
	}

	if v := os.Getenv(EnvAlgoliaAppID); v != "" {
		p.Algolia.AppID = v
	}
	if v := os.Getenv(EnvAlgoliaAPIKey); v != "" {
		p.Algolia.APIKey = v
	}
	if v := os.Getenv(EnvAlgoliaIndexName); v != "" {
		p.Algolia.IndexName = v
	}

	return siteconfig.New(p)
}
