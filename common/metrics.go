package common

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// RequestIDKey is the context key holding the per-request trace id
	RequestIDKey = "request_id"

	// RowsProcessedKey is set by handlers to the number of datasets they returned
	RowsProcessedKey = "rows_processed"
)

// MetricsMiddleware tracks API performance metrics.
// A nil db keeps the request id header but skips persistence.
func MetricsMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID for tracing
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		if db == nil {
			return
		}

		rowsProcessed := 0
		if rows, exists := c.Get(RowsProcessedKey); exists {
			if r, ok := rows.(int); ok {
				rowsProcessed = r
			}
		}

		errors := ""
		if len(c.Errors) > 0 {
			errors = c.Errors.String()
		}

		metric := ApiMetric{
			RequestID:     requestID,
			Endpoint:      c.FullPath(),
			Method:        c.Request.Method,
			StatusCode:    c.Writer.Status(),
			DurationMs:    int(time.Since(startTime).Milliseconds()),
			RowsProcessed: rowsProcessed,
			Errors:        errors,
			Timestamp:     startTime,
		}

		// Save metric asynchronously
		go func() {
			if err := db.Create(&metric).Error; err != nil {
				log.Printf("Failed to save metric for %s: %v", metric.Endpoint, err)
			}
		}()
	}
}
