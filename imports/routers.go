package imports

import (
	"errors"
	"fmt"
	"net/http"

	"housing-trends/common"
	"housing-trends/datasets"
	"housing-trends/parsers"
	"housing-trends/tables"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize caps the multipart body accepted by the preview endpoint
const MaxUploadSize = 64 << 20

// PreviewResponse describes an uploaded file after pivoting
type PreviewResponse struct {
	Filename    string   `json:"filename"`
	Format      string   `json:"format"`
	Preset      string   `json:"preset"`
	Regions     int      `json:"regions"`
	Periods     int      `json:"periods"`
	FirstPeriod string   `json:"first_period,omitempty"`
	LastPeriod  string   `json:"last_period,omitempty"`
	Labels      []string `json:"labels"`
}

// RegisterRoutes mounts the import endpoints
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/preview", PreviewImport)
}

// PreviewImport godoc
// @Summary Preview a dataset file
// @Description Pivots an uploaded CSV or XLSX file with a preset and reports its regions and period range. Nothing is registered or stored.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to preview (CSV or XLSX)"
// @Param preset formData string false "Transform preset (home_price or rent, default home_price)"
// @Param sheet formData string false "Worksheet for xlsx files (default: first sheet)"
// @Success 200 {object} PreviewResponse "Pivoted file summary"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 422 {object} map[string]string "File could not be pivoted"
// @Router /v1/imports/preview [post]
func PreviewImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds upload limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	format, err := parsers.FormatFromPath(header.Filename)
	if err != nil {
		common.RespondError(c, fmt.Errorf("%w: file must be .csv or .xlsx", common.ErrUnsupportedFormat))
		return
	}

	preset := c.DefaultPostForm("preset", tables.PresetHomePrice)
	opts, err := tables.PresetTransform(preset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := datasets.ReadRaw(format, file, c.PostForm("sheet"))
	if err != nil {
		respondInvalidFile(c, err)
		return
	}
	table, err := tables.Transform(raw, opts)
	if err != nil {
		respondInvalidFile(c, err)
		return
	}

	resp := PreviewResponse{
		Filename: header.Filename,
		Format:   string(format),
		Preset:   preset,
		Regions:  table.NumRegions(),
		Periods:  table.NumPeriods(),
		Labels:   table.Regions(),
	}
	if periods := table.Periods(); len(periods) > 0 {
		resp.FirstPeriod = periods[0]
		resp.LastPeriod = periods[len(periods)-1]
	}

	c.Set(common.RowsProcessedKey, resp.Regions)
	c.JSON(http.StatusOK, resp)
}

// respondInvalidFile reports content errors in an upload as 422
func respondInvalidFile(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
