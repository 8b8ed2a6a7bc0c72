// Package yaml loads healthpulse configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/healthpulse"
	yaml "gopkg.in/yaml.v3"
)

// File is the on-disk configuration schema. Omitted keys keep their
// defaults.
type File struct {
	Selectors []SelectorEntry `yaml:"selectors,omitempty"`

	Sanitizer struct {
		Tags    []string `yaml:"tags,omitempty"`
		Markers []string `yaml:"markers,omitempty"`
	} `yaml:"sanitizer,omitempty"`

	Boilerplate      []string       `yaml:"boilerplate,omitempty"`
	SummaryThreshold *int           `yaml:"summaryThreshold,omitempty"`
	FetchDelay       *time.Duration `yaml:"fetchDelay,omitempty"`
	FetchTimeout     *time.Duration `yaml:"fetchTimeout,omitempty"`
	UserAgent        string         `yaml:"userAgent,omitempty"`
	Fallbacks        []string       `yaml:"fallbacks,omitempty"`
}

// SelectorEntry is one domain's selector list.
type SelectorEntry struct {
	Domain    string   `yaml:"domain"`
	Selectors []string `yaml:"selectors"`
}

// Load reads the file at path over healthpulse.DefaultConfig. An empty
// path returns the defaults.
func Load(path string) (*healthpulse.Config, error) {
	if path == "" {
		return healthpulse.DefaultConfig(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a YAML document over healthpulse.DefaultConfig.
//
// Selector entries replace the default entry for the same domain and new
// domains are appended. Lists under sanitizer and boilerplate replace the
// defaults. Unknown keys and invalid selectors or patterns are EINVALID.
func Parse(data []byte) (*healthpulse.Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, healthpulse.Errorf(healthpulse.EINVALID, "parse config: %v", err)
	}

	cfg := healthpulse.DefaultConfig()

	extra := make([]healthpulse.DomainSelectors, 0, len(f.Selectors))
	for _, e := range f.Selectors {
		if e.Domain == "" {
			return nil, healthpulse.Errorf(healthpulse.EINVALID, "selector entry without domain")
		}
		for _, sel := range e.Selectors {
			if _, err := cascadia.Compile(sel); err != nil {
				return nil, healthpulse.Errorf(healthpulse.EINVALID, "invalid selector %q for %s: %v", sel, e.Domain, err)
			}
		}
		extra = append(extra, healthpulse.DomainSelectors{Domain: e.Domain, Selectors: e.Selectors})
	}
	cfg.Selectors = healthpulse.MergeSelectors(cfg.Selectors, extra)

	if f.Sanitizer.Tags != nil {
		cfg.Sanitizer.Tags = f.Sanitizer.Tags
	}
	if f.Sanitizer.Markers != nil {
		cfg.Sanitizer.Markers = f.Sanitizer.Markers
	}
	if f.Boilerplate != nil {
		if _, err := healthpulse.NewNormalizer(f.Boilerplate); err != nil {
			return nil, err
		}
		cfg.Boilerplate = f.Boilerplate
	}
	if f.SummaryThreshold != nil {
		cfg.SummaryThreshold = *f.SummaryThreshold
	}
	if f.FetchDelay != nil {
		cfg.FetchDelay = *f.FetchDelay
	}
	if f.FetchTimeout != nil {
		cfg.FetchTimeout = *f.FetchTimeout
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Fallbacks != nil {
		cfg.Fallbacks = f.Fallbacks
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg in the file schema.
func Marshal(cfg *healthpulse.Config) ([]byte, error) {
	var f File
	for _, e := range cfg.Selectors {
		f.Selectors = append(f.Selectors, SelectorEntry{Domain: e.Domain, Selectors: e.Selectors})
	}
	f.Sanitizer.Tags = cfg.Sanitizer.Tags
	f.Sanitizer.Markers = cfg.Sanitizer.Markers
	f.Boilerplate = cfg.Boilerplate
	f.SummaryThreshold = &cfg.SummaryThreshold
	f.FetchDelay = &cfg.FetchDelay
	f.FetchTimeout = &cfg.FetchTimeout
	f.UserAgent = cfg.UserAgent
	f.Fallbacks = cfg.Fallbacks

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
