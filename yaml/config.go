// Package yaml loads the feed configuration from YAML files using
// gopkg.in/yaml.v3. An embedded default describes the Akademie der
// bildenden Künste Wien canteen.
package yaml

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mensafeed"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// DefaultConfig returns the embedded default configuration file.
func DefaultConfig() []byte {
	return bytes.Clone(defaultConfig)
}

// Default returns the parsed default configuration.
func Default() (*mensafeed.Config, error) {
	return Parse(defaultConfig)
}

// Load reads the configuration at path. An empty path loads the default.
func Load(path string) (*mensafeed.Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected so that typos in category or field names do not go unnoticed.
func Parse(data []byte) (*mensafeed.Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, mensafeed.Errorf(mensafeed.EINVALID, "invalid config: %v", err)
	}

	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type file struct {
	SourceURL string      `yaml:"source_url"`
	Output    string      `yaml:"output"`
	Canteen   canteenFile `yaml:"canteen"`
	Prices    pricesFile  `yaml:"prices"`
}

type canteenFile struct {
	Name         string        `yaml:"name"`
	Address      string        `yaml:"address"`
	City         string        `yaml:"city"`
	Phone        string        `yaml:"phone"`
	Email        string        `yaml:"email"`
	Location     *locationFile `yaml:"location"`
	Availability string        `yaml:"availability"`
	Feed         *feedFile     `yaml:"feed"`
}

type locationFile struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type feedFile struct {
	Name     string        `yaml:"name"`
	Priority int           `yaml:"priority"`
	URL      string        `yaml:"url"`
	Source   string        `yaml:"source"`
	Schedule *scheduleFile `yaml:"schedule"`
}

type scheduleFile struct {
	DayOfMonth string `yaml:"day_of_month"`
	DayOfWeek  string `yaml:"day_of_week"`
	Month      string `yaml:"month"`
	Hour       string `yaml:"hour"`
	Minute     string `yaml:"minute"`
	Retry      string `yaml:"retry"`
}

type pricesFile struct {
	NonVegetarian map[string]price `yaml:"non_vegetarian"`
	Vegetarian    map[string]price `yaml:"vegetarian"`
	Vegan         map[string]price `yaml:"vegan"`
	Weekly        map[string]price `yaml:"weekly"`
}

// price accepts quoted and unquoted amounts ("4.20", 4.20, 4,20).
type price mensafeed.Price

func (p *price) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", n.Line)
	}
	v, err := mensafeed.ParsePrice(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %s", n.Line, mensafeed.ErrorMessage(err))
	}
	*p = price(v)
	return nil
}

func (f *file) config() (*mensafeed.Config, error) {
	cfg := &mensafeed.Config{
		SourceURL: f.SourceURL,
		Output:    f.Output,
		Canteen: mensafeed.Canteen{
			Name:         f.Canteen.Name,
			Address:      f.Canteen.Address,
			City:         f.Canteen.City,
			Phone:        f.Canteen.Phone,
			Email:        f.Canteen.Email,
			Availability: f.Canteen.Availability,
		},
		Prices: mensafeed.PriceTable{Meals: make(map[mensafeed.Category]mensafeed.Prices)},
	}
	if l := f.Canteen.Location; l != nil {
		cfg.Canteen.Location = &mensafeed.Location{Latitude: l.Latitude, Longitude: l.Longitude}
	}
	if fd := f.Canteen.Feed; fd != nil {
		cfg.Canteen.Feed = &mensafeed.FeedSource{
			Name:     fd.Name,
			Priority: fd.Priority,
			URL:      fd.URL,
			Source:   fd.Source,
		}
		if s := fd.Schedule; s != nil {
			cfg.Canteen.Feed.Schedule = &mensafeed.Schedule{
				DayOfMonth: s.DayOfMonth,
				DayOfWeek:  s.DayOfWeek,
				Month:      s.Month,
				Hour:       s.Hour,
				Minute:     s.Minute,
				Retry:      s.Retry,
			}
		}
	}

	byCategory := map[mensafeed.Category]map[string]price{
		mensafeed.NonVegetarian: f.Prices.NonVegetarian,
		mensafeed.Vegetarian:    f.Prices.Vegetarian,
		mensafeed.Vegan:         f.Prices.Vegan,
	}
	for _, c := range mensafeed.Categories {
		if len(byCategory[c]) == 0 {
			continue
		}
		p, err := rolePrices(byCategory[c])
		if err != nil {
			return nil, err
		}
		cfg.Prices.Meals[c] = p
	}
	if len(f.Prices.Weekly) > 0 {
		p, err := rolePrices(f.Prices.Weekly)
		if err != nil {
			return nil, err
		}
		cfg.Prices.Weekly = p
	}
	return cfg, nil
}

func rolePrices(m map[string]price) (mensafeed.Prices, error) {
	out := make(mensafeed.Prices, len(m))
	for role, p := range m {
		r := mensafeed.Role(role)
		if !r.Valid() {
			return nil, mensafeed.Errorf(mensafeed.EINVALID, "unknown price role %q", role)
		}
		out[r] = mensafeed.Price(p)
	}
	return out, nil
}
