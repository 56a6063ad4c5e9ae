package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks request structs against their validate tags. Field names
// in violation messages use the json tag so clients see the wire name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage renders the first constraint violation as a short
// client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return err.Error()
}

// SubmitResearchRequest is the body of POST /research.
type SubmitResearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// SubmitDeepResearchRequest is the body of POST /deep-research.
// The optional tuning fields fall back to server defaults when omitted.
// omitnil skips absent fields but still range-checks present ones, so an
// explicit zero is rejected rather than silently defaulted.
type SubmitDeepResearchRequest struct {
	Query              string   `json:"query" validate:"required"`
	MaxIterations      *int     `json:"max_iterations,omitempty" validate:"omitnil,min=1,max=5"`
	MinCompletionScore *float64 `json:"min_completion_score,omitempty" validate:"omitnil,min=0.5,max=1"`
	Budget             *int     `json:"budget,omitempty" validate:"omitnil,min=50,max=300"`
}
