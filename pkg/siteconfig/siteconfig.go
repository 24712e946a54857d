package siteconfig

import (
	"errors"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-multierror"
)

// Redacted replaces the Algolia API key in sanitized copies of the
// configuration.
const Redacted = "<redacted>"

// SEO holds the page metadata fallbacks embedded in generated page headers.
// Both fields may be empty; pages without their own metadata simply render
// without the corresponding tags.
type SEO struct {
	Title       string
	Description string
}

// Algolia holds the client-side credentials for the hosted search service.
// Search is enabled only when all three fields are non-empty; any empty
// field disables search entirely rather than producing a broken widget.
type Algolia struct {
	AppID     string
	APIKey    string
	IndexName string
}

// Params is the input to New. It is the only way to populate a Config.
type Params struct {
	SEO     SEO
	GitHub  string
	Discord string
	Algolia Algolia
}

// Config is the frozen site configuration. The zero value is usable only as
// a sentinel (IsZero); real values come from New.
type Config struct {
	seo     SEO
	github  string
	discord string
	algolia Algolia
}

// New validates p and returns the frozen configuration value. Validation is
// all-or-nothing: every field problem is collected into a single *ShapeError
// and no partially-built value escapes.
func New(p Params) (Config, error) {
	if err := p.validate(); err != nil {
		return Config{}, err
	}
	return Config{
		seo:     p.SEO,
		github:  p.GitHub,
		discord: p.Discord,
		algolia: p.Algolia,
	}, nil
}

// MustNew is like New but panics on invalid input. This is useful for test
// fixtures and embedded defaults where the parameters are known valid.
func MustNew(p Params) Config {
	cfg, err := New(p)
	if err != nil {
		panic(fmt.Sprintf("invalid site configuration: %v", err))
	}
	return cfg
}

func (p Params) validate() error {
	var merr *multierror.Error

	if err := validation.Validate(p.GitHub,
		validation.Required, is.URL, validation.By(absoluteHTTPURL)); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("github: %w", err))
	}
	if err := validation.Validate(p.Discord,
		validation.Required, is.URL, validation.By(absoluteHTTPURL)); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("discord: %w", err))
	}

	if merr != nil {
		return &ShapeError{err: merr}
	}
	return nil
}

// absoluteHTTPURL requires an absolute http(s) URL with a host. is.URL alone
// accepts scheme-less values like "example.com", which a template would emit
// as a broken relative link.
func absoluteHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a well-formed URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
}

// SEO returns the SEO metadata fallbacks. The returned struct is a copy;
// modifying it has no effect on the configuration.
func (c Config) SEO() SEO {
	return c.seo
}

// GitHub returns the repository URL rendered in navigation and footer links.
func (c Config) GitHub() string {
	return c.github
}

// Discord returns the community invite URL rendered in navigation and
// footer links.
func (c Config) Discord() string {
	return c.discord
}

// Algolia returns the search credentials. The returned struct is a copy;
// modifying it has no effect on the configuration.
func (c Config) Algolia() Algolia {
	return c.algolia
}

// SearchEnabled reports whether the site search widget should be
// initialized. It is false exactly when at least one Algolia credential
// field is empty.
func (c Config) SearchEnabled() bool {
	return c.algolia.AppID != "" &&
		c.algolia.APIKey != "" &&
		c.algolia.IndexName != ""
}

// Equal reports field-wise equality with other. Two configurations built
// from equal Params are always Equal.
func (c Config) Equal(other Config) bool {
	return c == other
}

// IsZero reports whether c is the zero value, i.e. was never constructed
// through New.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Sanitize returns a copy with the Algolia API key replaced by Redacted.
// The copy is safe to log or expose in diagnostics; the receiver is
// unchanged.
func (c Config) Sanitize() Config {
	s := c
	if s.algolia.APIKey != "" {
		s.algolia.APIKey = Redacted
	}
	return s
}
