package eventmodels

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultRefreshInterval = 60 * time.Second

type CsvFeedYAML struct {
	URL          string `yaml:"url"`
	ProxyPrefix  string `yaml:"proxyPrefix,omitempty"`
	KindColumn   string `yaml:"kindColumn,omitempty"`
	SymbolColumn string `yaml:"symbolColumn,omitempty"`
	ExpiryColumn string `yaml:"expiryColumn,omitempty"`
}

type JsonFeedYAML struct {
	URL         string `yaml:"url"`
	KindField   string `yaml:"kindField,omitempty"`
	SymbolField string `yaml:"symbolField,omitempty"`
	ExpiryField string `yaml:"expiryField,omitempty"`
}

type SheetsFeedYAML struct {
	SheetName    string `yaml:"sheetName"`
	SymbolColumn string `yaml:"symbolColumn,omitempty"`
	ExpiryColumn string `yaml:"expiryColumn,omitempty"`
}

type ExpiryConfigYAML struct {
	Symbols                []string       `yaml:"symbols"`
	Feed                   FeedName       `yaml:"feed"`
	RefreshIntervalSeconds int            `yaml:"refreshIntervalSeconds"`
	Timezone               string         `yaml:"timezone,omitempty"`
	Csv                    CsvFeedYAML    `yaml:"csv"`
	Json                   JsonFeedYAML   `yaml:"json"`
	Sheets                 SheetsFeedYAML `yaml:"sheets"`
}

func (c *ExpiryConfigYAML) Whitelist() Whitelist {
	if len(c.Symbols) == 0 {
		return DefaultWhitelist
	}

	return NewWhitelist(c.Symbols...)
}

func (c *ExpiryConfigYAML) GetRefreshInterval() time.Duration {
	if c.RefreshIntervalSeconds <= 0 {
		return DefaultRefreshInterval
	}

	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// Location returns the zone used to read epoch expiries. Empty means the
// process local zone.
func (c *ExpiryConfigYAML) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ExpiryConfigYAML: Location: %w", err)
	}

	return loc, nil
}

func (c *ExpiryConfigYAML) Validate() error {
	if err := c.Feed.Validate(); err != nil {
		return fmt.Errorf("ExpiryConfigYAML: %w", err)
	}

	switch c.Feed {
	case CsvFeed:
		if c.Csv.URL == "" {
			return fmt.Errorf("ExpiryConfigYAML: csv.url is required")
		}
	case JsonDumpFeed:
		if c.Json.URL == "" {
			return fmt.Errorf("ExpiryConfigYAML: json.url is required")
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func NewExpiryConfigYAML(data []byte) (*ExpiryConfigYAML, error) {
	var config ExpiryConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("NewExpiryConfigYAML: failed to unmarshal: %w", err)
	}

	if config.Feed == "" {
		config.Feed = CsvFeed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
