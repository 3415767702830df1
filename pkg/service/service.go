package service

import (
	"fmt"

	"github.com/snipdeck/snipdeck/pkg/models"
	"github.com/snipdeck/snipdeck/pkg/projection"
	"github.com/snipdeck/snipdeck/pkg/search"
	"github.com/snipdeck/snipdeck/pkg/source"
)

// Service is the core snippet service: it wires the scoped configuration
// source, the tree projection and the search index together.
type Service struct {
	Source     *source.Source
	Projection *projection.Projection
	Index      *search.Index
	Config     *Config
}

// Config holds service configuration
type Config struct {
	// ConfigFile is an explicit config file overriding scope discovery.
	ConfigFile string
	// WorkDir anchors project-scope discovery; empty means the process cwd.
	WorkDir string
	// IndexPath is the sqlite index location; empty means in-memory.
	IndexPath string
}

// New creates a new snippet service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	src, err := source.Open(cfg.ConfigFile, cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("open config source: %w", err)
	}

	indexPath := cfg.IndexPath
	if indexPath == "" {
		indexPath = ":memory:"
	}
	idx, err := search.NewIndex(indexPath)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	proj := projection.New(src.Snapshot)
	// Config edits re-emit the projection's own refresh signal.
	src.Watch(proj.Fire)

	return &Service{
		Source:     src,
		Projection: proj,
		Index:      idx,
		Config:     cfg,
	}, nil
}

// Commands returns the current command snapshot.
func (s *Service) Commands() []models.Command {
	return s.Source.Snapshot()
}

// Search reindexes the current snapshot and queries it. The index is
// derived data, so rebuilding per search keeps it trivially fresh; expected
// list sizes are tens to low hundreds of records.
func (s *Service) Search(query string, limit int) ([]models.Command, error) {
	if err := s.Index.Reindex(s.Commands()); err != nil {
		return nil, fmt.Errorf("reindex commands: %w", err)
	}
	return s.Index.Search(query, limit)
}

// FindCommand resolves a command by exact label. With duplicate labels the
// first record in configuration order wins.
func (s *Service) FindCommand(label string) (models.Command, error) {
	for _, c := range s.Commands() {
		if c.Label == label {
			return c, nil
		}
	}
	return models.Command{}, fmt.Errorf("no command labeled %q", label)
}

// Refresh fires the projection's refresh signal; the manual refresh trigger
// calls this synchronously.
func (s *Service) Refresh() {
	s.Projection.Fire()
}

// Close releases the search index.
func (s *Service) Close() error {
	return s.Index.Close()
}
