package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
)

// ClassifyRequest carries raw check-in/check-out values, either RFC3339 timestamps or HH:MM[:SS]
type ClassifyRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

// Parsed holds the validated request values as wall clock times on a zero date
type Parsed struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

func (r *ClassifyRequest) Validate() (Parsed, error) {
	var errs validator.ValidationErrors
	var parsed Parsed

	if r.CheckIn != nil && !validator.IsEmpty(*r.CheckIn) {
		t, ok := validator.IsValidClockValue(*r.CheckIn)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be RFC3339 or HH:MM[:SS]",
			})
		} else {
			parsed.CheckIn = &t
		}
	}

	if r.CheckOut != nil && !validator.IsEmpty(*r.CheckOut) {
		t, ok := validator.IsValidClockValue(*r.CheckOut)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be RFC3339 or HH:MM[:SS]",
			})
		} else {
			parsed.CheckOut = &t
		}
	}

	if len(errs) > 0 {
		return Parsed{}, errs
	}
	return parsed, nil
}

// ClassifyResponse echoes the thresholds that produced the classification
type ClassifyResponse struct {
	Classification
	Thresholds Thresholds `json:"thresholds"`
}
