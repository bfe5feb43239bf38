package common

import (
	"github.com/gin-gonic/gin"
)

// SelectionParam is the query parameter carrying the comma-joined region labels
const SelectionParam = "cities"

// RespondError records err on the context for the metrics middleware and writes
// the structured {"error": ...} body with the matching status
func RespondError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(StatusFor(err), gin.H{"error": ErrorMessage(err)})
}
