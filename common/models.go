package common

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	LoadStatusLoaded = "loaded"
	LoadStatusFailed = "failed"
)

// DatasetLoad records one attempt to load and transform a dataset at startup
type DatasetLoad struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	Dataset    string    `gorm:"not null;index" json:"dataset"`
	SourcePath string    `gorm:"not null" json:"source_path"`
	Format     string    `gorm:"not null" json:"format"` // csv, xlsx
	Status     string    `gorm:"not null" json:"status"` // loaded, failed
	Regions    int       `gorm:"default:0" json:"regions"`
	Periods    int       `gorm:"default:0" json:"periods"`
	DurationMs int       `gorm:"not null" json:"duration_ms"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	LoadedAt   time.Time `gorm:"not null" json:"loaded_at"`
}

// ApiMetric tracks API performance metrics
type ApiMetric struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RequestID     string    `gorm:"index" json:"request_id"`
	Endpoint      string    `gorm:"not null" json:"endpoint"`
	Method        string    `gorm:"not null" json:"method"`
	StatusCode    int       `gorm:"not null" json:"status_code"`
	DurationMs    int       `gorm:"not null" json:"duration_ms"`
	RowsProcessed int       `gorm:"default:0" json:"rows_processed"` // datasets returned
	Errors        string    `gorm:"type:text" json:"errors,omitempty"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

func (DatasetLoad) TableName() string { return "dataset_loads" }
func (ApiMetric) TableName() string   { return "api_metrics" }

// AutoMigrate creates the telemetry tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&DatasetLoad{}, &ApiMetric{}); err != nil {
		return fmt.Errorf("migrate telemetry tables: %w", err)
	}
	return nil
}
