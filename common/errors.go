package common

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingParameter is returned when the selection string is absent or empty
	ErrMissingParameter = errors.New("missing selection parameter")

	// ErrUnknownRegion is returned when a selected label is not a column of the table
	ErrUnknownRegion = errors.New("unknown region")

	// ErrDuplicateKey is returned when the identifier column repeats a value
	ErrDuplicateKey = errors.New("duplicate region key")

	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidPeriod     = errors.New("invalid period label")
	ErrInvalidValue      = errors.New("invalid numeric value")
	ErrUnknownDataset    = errors.New("unknown dataset")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// StatusFor maps an error to the HTTP status returned to the client
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingParameter), errors.Is(err, ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownRegion), errors.Is(err, ErrUnknownDataset):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NoCitiesSelected is the body message clients match on for an empty selection
const NoCitiesSelected = "No cities selected"

// ErrorMessage returns the message placed in the {"error": ...} body
func ErrorMessage(err error) string {
	if errors.Is(err, ErrMissingParameter) {
		return NoCitiesSelected
	}
	return err.Error()
}
