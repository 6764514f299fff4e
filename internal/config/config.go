/*
Package config manages the TOML configuration of the kinepredict demo driver.

	[filter]
	expected_elements = 1000
	false_positive_rate = 0.01
	hash_strategy = "fnv-djb2"

	[topk]
	k = 5
	error_rate = 0.001
	accuracy = 0.999

	[demo]
	keywords = ["marketing", "market", "markets", "content"]
	prefix = "mark"

	[[demo.headlines]]
	text = "Limited Time Offer"
	score = 0.92

	[log]
	level = "info"
*/
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/kinepredict/kinepredict"
	"github.com/kinepredict/kinepredict/filters"
)

// Config holds the entire config structure
type Config struct {
	Filter FilterConfig `toml:"filter"`
	TopK   TopKConfig   `toml:"topk"`
	Demo   DemoConfig   `toml:"demo"`
	Log    LogConfig    `toml:"log"`
}

// FilterConfig sizes the membership filter used for duplicate detection.
type FilterConfig struct {
	ExpectedElements  uint    `toml:"expected_elements"`
	FalsePositiveRate float64 `toml:"false_positive_rate"`
	HashStrategy      string  `toml:"hash_strategy"`
}

// TopKConfig sizes the keyword frequency ranking.
type TopKConfig struct {
	K         uint    `toml:"k"`
	ErrorRate float64 `toml:"error_rate"`
	Accuracy  float64 `toml:"accuracy"`
}

// DemoConfig holds the inputs of the demo scenarios.
type DemoConfig struct {
	Keywords  []string   `toml:"keywords"`
	Prefix    string     `toml:"prefix"`
	Headlines []Headline `toml:"headlines"`
}

// Headline is a piece of copy with the score a caller's model assigned to it.
type Headline struct {
	Text  string  `toml:"text"`
	Score float64 `toml:"score"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Filter: FilterConfig{
			ExpectedElements:  1000,
			FalsePositiveRate: kinepredict.DefaultFalsePositiveRate,
			HashStrategy:      filters.FNVDJB2.String(),
		},
		TopK: TopKConfig{
			K:         5,
			ErrorRate: 0.001,
			Accuracy:  0.999,
		},
		Demo: DemoConfig{
			Keywords: []string{"marketing", "market", "markets", "content"},
			Prefix:   "mark",
			Headlines: []Headline{
				{Text: "Buy Now - 50% Off!", Score: 0.85},
				{Text: "Limited Time Offer", Score: 0.92},
				{Text: "Check This Out", Score: 0.67},
				{Text: "buy now: 50% off", Score: 0.81},
				{Text: "Limited Time Marketing Offer", Score: 0.74},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at _path_ over the built-in defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	defaults := config.clearLists()
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	config.restoreLists(meta, defaults)
	for _, key := range meta.Undecoded() {
		log.Warnf("Ignoring unknown config key %s in %s", key, path)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("Loaded config from %s", path)
	return config, nil
}

// Parse decodes TOML _data_ over the built-in defaults
func Parse(data string) (*Config, error) {
	config := DefaultConfig()
	defaults := config.clearLists()
	meta, err := toml.Decode(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.restoreLists(meta, defaults)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// clearLists empties the list fields before decoding so the decoder doesn't
// merge file entries into the default ones. It returns the defaults.
func (c *Config) clearLists() DemoConfig {
	defaults := c.Demo
	c.Demo.Keywords = nil
	c.Demo.Headlines = nil
	return defaults
}

// restoreLists puts back the default lists the file doesn't define
func (c *Config) restoreLists(meta toml.MetaData, defaults DemoConfig) {
	if !meta.IsDefined("demo", "keywords") {
		c.Demo.Keywords = defaults.Keywords
	}
	if !meta.IsDefined("demo", "headlines") {
		c.Demo.Headlines = defaults.Headlines
	}
}

// Validate checks every section, returning an error wrapping kinepredict.ErrInvalidArgument
func (c *Config) Validate() error {
	if err := kinepredict.ValidateFilterParameters(c.Filter.ExpectedElements, c.Filter.FalsePositiveRate); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if _, err := filters.ParseHashStrategy(c.Filter.HashStrategy); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if c.TopK.K == 0 {
		return fmt.Errorf("topk: %w: k should be greater than 0", kinepredict.ErrInvalidArgument)
	}
	if !(c.TopK.ErrorRate > 0 && c.TopK.ErrorRate < 1) || !(c.TopK.Accuracy > 0 && c.TopK.Accuracy < 1) {
		return fmt.Errorf("topk: %w: error_rate and accuracy should be in (0, 1)", kinepredict.ErrInvalidArgument)
	}
	return nil
}

// HashStrategy returns the parsed filter hash strategy
func (c *Config) HashStrategy() filters.HashStrategy {
	strategy, err := filters.ParseHashStrategy(c.Filter.HashStrategy)
	if err != nil {
		return filters.FNVDJB2
	}
	return strategy
}
