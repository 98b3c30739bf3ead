package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"o3profile/pkg/contracts/domain"
)

// Parameter surface bounds, mirrored by the dashboard controls.
const (
	MinBinWidth     = 10
	MaxBinWidth     = 500
	BinWidthStep    = 10
	DefaultBinWidth = 50

	MinWindow     = 3
	MaxWindow     = 51
	DefaultWindow = 11
)

// ParamsError reports a single invalid build parameter.
type ParamsError struct {
	Field  string
	Reason string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateParams checks a parameter set against the dashboard bounds. Range
// checks come from the struct tags; the slider step constraints are explicit
// because validator has no modulus rule.
func ValidateParams(p domain.Params) error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ParamsError{
				Field:  fieldName(fe.Field()),
				Reason: fmt.Sprintf("failed %s=%s constraint", fe.Tag(), fe.Param()),
			}
		}
		return &ParamsError{Field: "params", Reason: err.Error()}
	}

	if p.BinWidth%BinWidthStep != 0 {
		return &ParamsError{
			Field:  "bin_width",
			Reason: fmt.Sprintf("must be a multiple of %d", BinWidthStep),
		}
	}
	if p.Window%2 != 1 {
		return &ParamsError{Field: "window", Reason: "must be odd"}
	}
	return nil
}

func fieldName(structField string) string {
	switch structField {
	case "BinWidth":
		return "bin_width"
	case "Window":
		return "window"
	case "Source":
		return "source"
	default:
		return structField
	}
}
