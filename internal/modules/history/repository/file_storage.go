package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/promodesk/social-publisher/internal/modules/history/domain"
	"github.com/samber/oops"
)

// FileStorage implements history.Repository using file system
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based history repository
func NewFileStorage(basePath string) (Repository, error) {
	historyPath := filepath.Join(basePath, "history")
	if err := os.MkdirAll(historyPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create history directory").Wrap(err)
	}

	return &FileStorage{basePath: historyPath}, nil
}

func (s *FileStorage) SaveRecord(record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Store records in business-specific directories
	recordDir := filepath.Join(s.basePath, record.BusinessID)
	if err := os.MkdirAll(recordDir, 0755); err != nil {
		return oops.With("record_dir", recordDir, "context", "failed to create record directory").Wrap(err)
	}

	path := filepath.Join(recordDir, fmt.Sprintf("%s.json", record.ID))
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return oops.With("business_id", record.BusinessID, "record_id", record.ID, "context", "failed to marshal record").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}

func (s *FileStorage) GetRecords(businessID string, limit int) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recordDir := filepath.Join(s.basePath, businessID)
	entries, err := os.ReadDir(recordDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Record{}, nil
		}
		return nil, oops.With("business_id", businessID, "record_dir", recordDir, "context", "failed to read history directory").Wrap(err)
	}

	// Record ids are time-prefixed, so directory order is chronological;
	// walk backwards for newest-first.
	var records []*domain.Record
	count := 0
	for i := len(entries) - 1; i >= 0 && count < limit; i-- {
		entry := entries[i]
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := filepath.Join(recordDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var record domain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}

		records = append(records, &record)
		count++
	}

	return records, nil
}
