package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfoundry/docsite/pkg/siteconfig"
)

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadFS(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "https://github.com/org/repo"
discord = "https://discord.com/invite/abc123"

seo {
  title       = "My Docs"
  description = "Docs for My Project"
}

algolia {
  app_id     = "APPID"
  api_key    = "secret-key"
  index_name = "docs"
}
`)

		cfg, err := LoadFS(fs, "site.hcl")
		require.NoError(t, err)

		assert.Equal(t, "My Docs", cfg.SEO().Title)
		assert.Equal(t, "Docs for My Project", cfg.SEO().Description)
		assert.Equal(t, "https://github.com/org/repo", cfg.GitHub())
		assert.Equal(t, "https://discord.com/invite/abc123", cfg.Discord())
		assert.True(t, cfg.SearchEnabled())
	})

	t.Run("minimal config disables search", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "https://github.com/org/repo"
discord = "https://discord.com/invite/abc123"
`)

		cfg, err := LoadFS(fs, "site.hcl")
		require.NoError(t, err)
		assert.False(t, cfg.SearchEnabled())
		assert.Empty(t, cfg.SEO().Title)
	})

	t.Run("missing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		_, err := LoadFS(fs, "site.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("unparsable HCL", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `github = `)

		_, err := LoadFS(fs, "site.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("shape errors surface from the file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "not a url"
discord = "https://discord.com/invite/abc123"
`)

		_, err := LoadFS(fs, "site.hcl")
		require.Error(t, err)

		var shapeErr *siteconfig.ShapeError
		assert.True(t, errors.As(err, &shapeErr), "expected *siteconfig.ShapeError, got %T", err)
	})

	t.Run("missing required attributes surface as shape errors", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
seo {
  title = "My Docs"
}
`)

		_, err := LoadFS(fs, "site.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "github")
		assert.Contains(t, err.Error(), "discord")
	})
}

func TestLoadFS_EnvOverrides(t *testing.T) {
	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv(EnvAlgoliaAppID, "ENV-APP")
		t.Setenv(EnvAlgoliaAPIKey, "env-key")
		t.Setenv(EnvAlgoliaIndexName, "env-index")

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "https://github.com/org/repo"
discord = "https://discord.com/invite/abc123"

algolia {
  app_id     = "FILE-APP"
  api_key    = "file-key"
  index_name = "file-index"
}
`)

		cfg, err := LoadFS(fs, "site.hcl")
		require.NoError(t, err)

		algolia := cfg.Algolia()
		assert.Equal(t, "ENV-APP", algolia.AppID)
		assert.Equal(t, "env-key", algolia.APIKey)
		assert.Equal(t, "env-index", algolia.IndexName)
	})

	t.Run("environment completes a partial file block", func(t *testing.T) {
		t.Setenv(EnvAlgoliaAPIKey, "env-key")

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "https://github.com/org/repo"
discord = "https://discord.com/invite/abc123"

algolia {
  app_id     = "APPID"
  index_name = "docs"
}
`)

		cfg, err := LoadFS(fs, "site.hcl")
		require.NoError(t, err)
		assert.True(t, cfg.SearchEnabled())
		assert.Equal(t, "env-key", cfg.Algolia().APIKey)
	})

	t.Run("missing secret disables search instead of failing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "site.hcl", `
github  = "https://github.com/org/repo"
discord = "https://discord.com/invite/abc123"

algolia {
  app_id     = "APPID"
  index_name = "docs"
}
`)

		cfg, err := LoadFS(fs, "site.hcl")
		require.NoError(t, err)
		assert.False(t, cfg.SearchEnabled())
	})
}
