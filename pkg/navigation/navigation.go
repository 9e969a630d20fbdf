package navigation

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"vallista-blog/pkg/validator"
)

var ErrInvalidConfig = errors.New("invalid navigation config")

// Item is a single navigation button: a category in the main section of the
// bar or a footer link below it. Icon holds inline markup (usually an SVG).
type Item struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// Config holds the two ordered lists rendered by the navigation bar. Items are
// rendered in the order they appear here.
type Config struct {
	Categories []Item `yaml:"categories" json:"categories"`
	Footer     []Item `yaml:"footer" json:"footer"`
}

// Load reads a YAML navigation config. An empty path returns Default().
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read navigation config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse navigation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every entry. Category links are required; a footer link may
// be empty, in which case the entry is configured but not rendered.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Categories)+len(c.Footer))
	check := func(section string, index int, item Item, linkRule string) error {
		if err := validator.Validate(item); err != nil {
			return fmt.Errorf("%w: %s[%d]: name is required", ErrInvalidConfig, section, index)
		}
		if err := validator.Var(item.Link, linkRule); err != nil {
			return fmt.Errorf("%w: %s[%d] %q: link %q must be a site path or URL", ErrInvalidConfig, section, index, item.Name, item.Link)
		}
		if seen[item.Name] {
			return fmt.Errorf("%w: duplicate entry name %q", ErrInvalidConfig, item.Name)
		}
		seen[item.Name] = true
		return nil
	}

	for i, item := range c.Categories {
		if err := check("categories", i, item, "required,navlink"); err != nil {
			return err
		}
	}
	for i, item := range c.Footer {
		if err := check("footer", i, item, "omitempty,navlink"); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint identifies the config contents; it changes whenever any entry
// changes, which makes it usable as a cache key component.
func (c Config) Fingerprint() string {
	digest := xxhash.New()
	write := func(section string, items []Item) {
		for _, item := range items {
			_, _ = digest.WriteString(section)
			for _, field := range []string{item.Name, item.Icon, item.Link} {
				_, _ = digest.WriteString(strconv.Itoa(len(field)))
				_, _ = digest.WriteString(":")
				_, _ = digest.WriteString(field)
			}
		}
	}
	write("c", c.Categories)
	write("f", c.Footer)
	return strconv.FormatUint(digest.Sum64(), 16)
}
