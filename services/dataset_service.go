package services

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"marketecho/metrics"
	"marketecho/models"

	"github.com/apex/log"
	"github.com/goccy/go-json"
)

// DatasetService provides the brand table loaded from the static dataset file.
// The file is read and parsed at most once per service; the resulting table is
// never modified afterwards.
type DatasetService struct {
	path string

	once    sync.Once
	brands  models.BrandTable
	keys    []string
	loadErr error
}

// NewDatasetService creates a dataset service for the file at path. Nothing is
// read until Preload or the first lookup.
func NewDatasetService(path string) *DatasetService {
	return &DatasetService{path: path}
}

// Preload forces the dataset to load and returns the load error, if any.
// The service stays usable with an empty table when an error is returned.
func (s *DatasetService) Preload() error {
	s.load()
	return s.loadErr
}

// Brands returns the brand table, loading it on first use.
// A missing or malformed file yields an empty table.
func (s *DatasetService) Brands() models.BrandTable {
	s.load()
	return s.brands
}

// Lookup returns the record stored under an already normalized key
func (s *DatasetService) Lookup(key string) (models.BrandRecord, bool) {
	record, ok := s.Brands()[key]
	return record, ok
}

// Keys returns up to n keys in sorted order
func (s *DatasetService) Keys(n int) []string {
	s.load()
	if n <= 0 {
		return nil
	}
	if n > len(s.keys) {
		n = len(s.keys)
	}
	out := make([]string, n)
	copy(out, s.keys[:n])
	return out
}

// Len returns the number of brands in the table
func (s *DatasetService) Len() int {
	return len(s.Brands())
}

// LoadErr returns the error from loading the dataset, loading it first if needed.
func (s *DatasetService) LoadErr() error {
	s.load()
	return s.loadErr
}

func (s *DatasetService) load() {
	s.once.Do(func() {
		start := time.Now()
		brands, err := readDataset(s.path)
		if err != nil {
			log.WithError(err).WithField("path", s.path).Error("Failed to load brand dataset, serving empty table")
			s.loadErr = err
			brands = models.BrandTable{}
			metrics.DatasetLoadErrorsTotal.Inc()
		} else {
			log.WithFields(log.Fields{
				"path":     s.path,
				"brands":   len(brands),
				"duration": time.Since(start).String(),
			}).Info("Brand dataset loaded")
		}

		keys := make([]string, 0, len(brands))
		for k := range brands {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		s.brands = brands
		s.keys = keys
		metrics.DatasetBrands.Set(float64(len(brands)))
	})
}

func readDataset(path string) (models.BrandTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var dataset models.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if dataset.Brands == nil {
		return models.BrandTable{}, nil
	}
	return dataset.Brands, nil
}

// WriteDataset serializes a brand table into the dataset file layout.
func WriteDataset(path string, brands models.BrandTable) error {
	data, err := json.MarshalIndent(models.Dataset{Brands: brands}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
