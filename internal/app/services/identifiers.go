package services

import (
	"encoding/json"

	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
)

// parseTargetID converts a raw JSON identifier into a positive int64. The
// request DTOs keep identifiers as json.Number so a string or fractional value
// fails binding, and anything non-positive fails here — both end up as the
// same validation error instead of a generic parse failure.
func parseTargetID(raw json.Number, label string) (int64, error) {
	id, err := raw.Int64()
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + label + " identifier")
	}
	return id, nil
}
