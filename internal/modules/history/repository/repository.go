package repository

import (
	"github.com/promodesk/social-publisher/internal/modules/history/domain"
)

// Repository defines the interface for publish history persistence
type Repository interface {
	SaveRecord(record *domain.Record) error
	GetRecords(businessID string, limit int) ([]*domain.Record, error)
}
