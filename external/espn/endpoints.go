package espn

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var defaultCatalog []byte

var placeholderRegex = regexp.MustCompile(`\{(\w+)\}`)

// EndpointTemplate is one templated upstream resource.
type EndpointTemplate struct {
	URL    string            `yaml:"url"`
	Params map[string]string `yaml:"params"`
}

// Catalog maps endpoint keys to URL templates under a base URL.
type Catalog struct {
	BaseURL   string                      `yaml:"base_url"`
	Endpoints map[string]EndpointTemplate `yaml:"endpoints"`
}

// LoadCatalog reads a catalog file, or the embedded default when path is empty.
func LoadCatalog(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, crerr.Wrapf(err, "read endpoint catalog %q", path)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return Catalog{}, crerr.Wrap(err, "parse endpoint catalog")
	}
	catalog.BaseURL = strings.TrimRight(strings.TrimSpace(catalog.BaseURL), "/")
	if catalog.BaseURL == "" {
		return Catalog{}, fmt.Errorf("%w: endpoint catalog base_url is required", ingest.ErrInvalidInput)
	}
	if len(catalog.Endpoints) == 0 {
		return Catalog{}, fmt.Errorf("%w: endpoint catalog has no endpoints", ingest.ErrInvalidInput)
	}
	return catalog, nil
}

// WithBaseURL returns a copy pointed at another host; empty keeps the current one.
func (c Catalog) WithBaseURL(baseURL string) Catalog {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	return c
}

// URL fills the template for key and merges query over the default params.
func (c Catalog) URL(key string, path, query map[string]string) (string, error) {
	tmpl, ok := c.Endpoints[key]
	if !ok {
		return "", fmt.Errorf("%w: unknown endpoint %q", ingest.ErrInvalidInput, key)
	}

	var missing []string
	resolved := placeholderRegex.ReplaceAllStringFunc(tmpl.URL, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := path[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return token
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: endpoint %q needs %s", ingest.ErrInvalidInput, key, strings.Join(missing, ", "))
	}

	values := url.Values{}
	for k, v := range tmpl.Params {
		values.Set(k, v)
	}
	for k, v := range query {
		values.Set(k, v)
	}

	full := c.BaseURL + resolved
	if encoded := values.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full, nil
}
