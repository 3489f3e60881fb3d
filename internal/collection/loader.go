package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/scavhall/scavrack/internal/domain"
)

// Sentinel errors for the collection loader
var (
	ErrDuplicateCollectionName = errors.New("duplicate collection name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for collection views
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Collections []Spec `json:"collections"`
}

// Load reads and parses a collections JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the collection configuration for errors
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Collections) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCollectionsDefined)
	}

	// Track names for duplicate detection
	names := make(map[string]bool, len(config.Collections))

	for i := range config.Collections {
		if err := validateSpec(i, &config.Collections[i], names); err != nil {
			return err
		}
	}

	return nil
}

func validateSpec(index int, spec *Spec, names map[string]bool) error {
	if spec.Name == "" {
		return fmt.Errorf(ErrFmtCollectionAtIndexEmpty, ErrInvalidConfig, index)
	}

	if names[spec.Name] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateCollectionName, spec.Name)
	}
	names[spec.Name] = true

	if spec.MinRarityScore != nil && (*spec.MinRarityScore < 0 || *spec.MinRarityScore > 100) {
		return fmt.Errorf(ErrFmtCollectionBadRarity, ErrInvalidConfig, spec.Name)
	}

	for _, tier := range spec.TierWhitelist {
		if !domain.IsValidTier(string(tier)) {
			return fmt.Errorf(ErrFmtCollectionBadTier, ErrInvalidConfig, spec.Name, tier)
		}
	}

	return nil
}

// Registry holds the loaded collection specs and supports hot reload from the
// admin surface. Reads vastly outnumber reloads.
type Registry struct {
	path string

	mu    sync.RWMutex
	specs map[string]Spec
	order []string
}

// NewRegistry creates a registry backed by the given config path and performs
// the initial load.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the config file, replacing the spec set atomically.
// On error the previous specs stay in effect.
func (r *Registry) Reload() error {
	config, err := Load(r.path)
	if err != nil {
		return err
	}

	specs := make(map[string]Spec, len(config.Collections))
	order := make([]string, 0, len(config.Collections))
	for _, spec := range config.Collections {
		specs[spec.Name] = spec
		order = append(order, spec.Name)
	}

	r.mu.Lock()
	r.specs = specs
	r.order = order
	r.mu.Unlock()

	return nil
}

// Get returns the spec for a named collection.
func (r *Registry) Get(name string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, name)
	}
	return spec, nil
}

// Names returns the configured collection names in file order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
