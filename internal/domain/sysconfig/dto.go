package sysconfig

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
)

type UpdateConfigRequest struct {
	Key         string  `json:"-"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidConfigKey(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key must be lower snake case (2-100 chars)",
		})
	}

	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	} else if msg := validateKind(KindOf(r.Key), r.Value); msg != "" {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: msg,
		})
	}

	if r.Description != nil && len(*r.Description) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateKind(kind Kind, value string) string {
	switch kind {
	case KindTimeOfDay:
		if !validator.IsValidTimeOfDay(value) {
			return "value must be a time of day (HH:MM or HH:MM:SS)"
		}
	case KindInteger:
		if !validator.IsInteger(value) {
			return "value must be an integer"
		}
	case KindFloat:
		if !validator.IsFloat(value) {
			return "value must be a number"
		}
	case KindBoolean:
		if !validator.IsBool(value) {
			return fmt.Sprintf("value must be a boolean, got %q", value)
		}
	}
	return ""
}

type UpdateConfigResponse struct {
	Key             string `json:"key"`
	Value           string `json:"value"`
	RequiresRefresh bool   `json:"requires_refresh"`
}

type ListConfigsResponse struct {
	Configs map[string]EntryValue `json:"configs"`
}

type InitializeDefaultsResponse struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}
