package charts

import (
	"net/http"

	"housing-trends/common"
	"housing-trends/datasets"
	"housing-trends/selection"

	"github.com/gin-gonic/gin"
)

// Handler serves chart data from the datasets loaded at startup
type Handler struct {
	registry *datasets.Registry
	style    selection.Style
}

// NewHandler binds chart endpoints to a loaded registry
func NewHandler(registry *datasets.Registry) *Handler {
	return &Handler{
		registry: registry,
		style:    selection.DefaultStyle(),
	}
}

// RegisterRoutes mounts the legacy dashboard endpoints on api and the
// per-dataset endpoints on v1
func RegisterRoutes(api *gin.RouterGroup, v1 *gin.RouterGroup, h *Handler) {
	api.GET("/cities", h.ListCities)
	for _, d := range h.registry.Routes() {
		api.GET("/"+d.Route, h.legacyChart(d))
	}

	v1.GET("", h.ListDatasets)
	v1.GET("/:dataset/regions", h.ListRegions)
	v1.GET("/:dataset/chart", h.GetChart)
	v1.GET("/:dataset/summary", h.GetSummary)
}

// ListCities godoc
// @Summary List selectable cities
// @Description Returns the region labels of the primary dataset in table order
// @Tags charts
// @Produce json
// @Success 200 {array} string "Region labels"
// @Router /cities [get]
func (h *Handler) ListCities(c *gin.Context) {
	d, err := h.registry.Primary()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d.Table.Regions())
}

// legacyChart serves /api/<route>?cities=... for one dataset
func (h *Handler) legacyChart(d *datasets.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.writeChart(c, d)
	}
}

// ListDatasets godoc
// @Summary List datasets
// @Description Returns every loaded dataset with its region and period counts
// @Tags datasets
// @Produce json
// @Success 200 {array} datasets.Info "Loaded datasets"
// @Router /v1/datasets [get]
func (h *Handler) ListDatasets(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Infos())
}

// ListRegions godoc
// @Summary List regions of a dataset
// @Tags datasets
// @Produce json
// @Param dataset path string true "Dataset name"
// @Success 200 {array} string "Region labels"
// @Failure 404 {object} map[string]string "Dataset not found"
// @Router /v1/datasets/{dataset}/regions [get]
func (h *Handler) ListRegions(c *gin.Context) {
	d, err := h.registry.Get(c.Param("dataset"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d.Table.Regions())
}

// GetChart godoc
// @Summary Get line chart data
// @Description Returns one dataset per selected region over the full period range
// @Tags charts
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param cities query string true "Comma-joined City, ST labels"
// @Success 200 {object} selection.ChartPayload "Chart data"
// @Failure 400 {object} map[string]string "No cities selected"
// @Failure 404 {object} map[string]string "Dataset or region not found"
// @Router /v1/datasets/{dataset}/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	d, err := h.registry.Get(c.Param("dataset"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	h.writeChart(c, d)
}

func (h *Handler) writeChart(c *gin.Context, d *datasets.Dataset) {
	payload, err := selection.Chart(d.Table, c.Query(common.SelectionParam), h.style)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.Set(common.RowsProcessedKey, len(payload.Datasets))
	c.JSON(http.StatusOK, payload)
}

// GetSummary godoc
// @Summary Get per-region statistics
// @Description Returns observation counts, range, mean, deviation and overall change per selected region
// @Tags charts
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param cities query string true "Comma-joined City, ST labels"
// @Success 200 {array} selection.RegionSummary "Summaries in selection order"
// @Failure 400 {object} map[string]string "No cities selected"
// @Failure 404 {object} map[string]string "Dataset or region not found"
// @Router /v1/datasets/{dataset}/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	d, err := h.registry.Get(c.Param("dataset"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	sel, err := selection.Parse(c.Query(common.SelectionParam))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	summaries, err := selection.Summarize(d.Table, sel)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.Set(common.RowsProcessedKey, len(summaries))
	c.JSON(http.StatusOK, summaries)
}
