// Package sitesearch wires the site configuration's Algolia credentials to
// the hosted search service. When the credentials are incomplete the service
// is constructed in a disabled state and the site simply renders without a
// search widget.
package sitesearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"github.com/hashicorp/go-hclog"

	"github.com/docfoundry/docsite/pkg/siteconfig"
)

// ErrDisabled is returned by operations on a disabled Service.
var ErrDisabled = errors.New("site search is disabled")

// WidgetSettings is the credential triple a page template embeds to
// bootstrap the client-side search widget. The API key here is the
// search-only key, which is client-side by design.
type WidgetSettings struct {
	AppID     string `json:"appId"`
	APIKey    string `json:"apiKey"`
	IndexName string `json:"indexName"`
}

// Service provides access to the site's hosted search index.
type Service struct {
	appID     string
	apiKey    string
	indexName string
	index     *search.Index
	log       hclog.Logger
}

// New builds a Service from the frozen site configuration. When
// cfg.SearchEnabled() is false the returned Service is disabled rather than
// broken: Enabled reports false and operations return ErrDisabled.
func New(cfg siteconfig.Config, log hclog.Logger) *Service {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	if !cfg.SearchEnabled() {
		log.Debug("algolia credentials incomplete, search disabled")
		return &Service{log: log}
	}

	a := cfg.Algolia()
	client := search.NewClient(a.AppID, a.APIKey)

	log.Info("initialized search service", "app_id", a.AppID, "index", a.IndexName)

	return &Service{
		appID:     a.AppID,
		apiKey:    a.APIKey,
		indexName: a.IndexName,
		index:     client.InitIndex(a.IndexName),
		log:       log,
	}
}

// Enabled reports whether the service is backed by a real index.
func (s *Service) Enabled() bool {
	return s.index != nil
}

// WidgetSettings returns the settings to embed in generated pages. The
// second return value is false when search is disabled and no widget should
// be rendered.
func (s *Service) WidgetSettings() (WidgetSettings, bool) {
	if !s.Enabled() {
		return WidgetSettings{}, false
	}
	return WidgetSettings{
		AppID:     s.appID,
		APIKey:    s.apiKey,
		IndexName: s.indexName,
	}, true
}

// Ping verifies the configured credentials against the index by fetching
// its settings. Returns ErrDisabled when search is disabled.
func (s *Service) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if _, err := s.index.GetSettings(ctx); err != nil {
		return fmt.Errorf("algolia index %q unreachable: %w", s.indexName, err)
	}
	s.log.Debug("algolia index reachable", "index", s.indexName)
	return nil
}
