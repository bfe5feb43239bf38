package exports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"housing-trends/common"
	"housing-trends/datasets"
	"housing-trends/selection"
	"housing-trends/tables"

	"github.com/gin-gonic/gin"
)

const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"

	// PeriodColumn heads the first column of CSV exports
	PeriodColumn = "period"
)

// Handler streams selections of loaded datasets
type Handler struct {
	registry *datasets.Registry
}

// NewHandler binds export endpoints to a loaded registry
func NewHandler(registry *datasets.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes mounts the export endpoint on the datasets group
func RegisterRoutes(v1 *gin.RouterGroup, h *Handler) {
	v1.GET("/:dataset/export", h.StreamExport)
}

// StreamExport godoc
// @Summary Stream a selection of a dataset
// @Description Streams the selected regions period by period in CSV or NDJSON format
// @Tags exports
// @Produce text/csv
// @Produce application/x-ndjson
// @Param dataset path string true "Dataset name"
// @Param cities query string true "Comma-joined City, ST labels"
// @Param format query string false "Export format (csv or ndjson, default csv)"
// @Success 200 {file} file "Streaming export data"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Dataset or region not found"
// @Router /v1/datasets/{dataset}/export [get]
func (h *Handler) StreamExport(c *gin.Context) {
	d, err := h.registry.Get(c.Param("dataset"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	format := c.DefaultQuery("format", FormatCSV)
	if format != FormatCSV && format != FormatNDJSON {
		common.RespondError(c, fmt.Errorf("%w: %q, must be: csv or ndjson", common.ErrUnsupportedFormat, format))
		return
	}

	sel, err := selection.Parse(c.Query(common.SelectionParam))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	// Resolve every label before the first byte is written
	series, err := d.Table.Select(sel)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	periods := d.Table.Periods()

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", d.Name, timestamp, format)

	if format == FormatCSV {
		c.Header("Content-Type", "text/csv")
	} else {
		c.Header("Content-Type", "application/x-ndjson")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	c.Status(http.StatusOK)
	if format == FormatCSV {
		err = WriteCSV(c.Writer, periods, series)
	} else {
		err = WriteNDJSON(c.Writer, periods, series)
	}
	if err != nil {
		// Headers are already sent, the client sees a truncated body
		log.Printf("Export of %s interrupted: %v", d.Name, err)
		c.Error(err)
	}
	c.Writer.Flush()

	c.Set(common.RowsProcessedKey, len(series))
}

// WriteCSV writes a period column followed by one column per series
func WriteCSV(w io.Writer, periods []string, series []tables.Series) error {
	csvWriter := csv.NewWriter(w)

	header := make([]string, 0, len(series)+1)
	header = append(header, PeriodColumn)
	for _, s := range series {
		header = append(header, s.Label)
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	row := make([]string, len(series)+1)
	for p, period := range periods {
		row[0] = period
		for i, s := range series {
			row[i+1] = tables.FormatCell(s.Values[p])
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// ndjsonLine is one period of an NDJSON export. Values are keyed by region
// label, so no label can collide with the period field.
type ndjsonLine struct {
	Period string              `json:"period"`
	Values map[string]*float64 `json:"values"`
}

// WriteNDJSON writes one object per period with values keyed by region label.
// Missing observations are written as null.
func WriteNDJSON(w io.Writer, periods []string, series []tables.Series) error {
	for p, period := range periods {
		line := ndjsonLine{
			Period: period,
			Values: make(map[string]*float64, len(series)),
		}
		for _, s := range series {
			line.Values[s.Label] = s.Values[p]
		}

		jsonBytes, err := json.Marshal(line)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", jsonBytes); err != nil {
			return err
		}
	}
	return nil
}
