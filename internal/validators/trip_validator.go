package validators

import (
	"errors"
	"fmt"
	"strings"

	"tripmind/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("transport_mode", validateTransportMode)
	validate.RegisterValidation("trip_status", validateTripStatus)
}

var (
	ErrInvalidTransportMode = errors.New("invalid transport mode")
	ErrInvalidTripStatus    = errors.New("invalid trip status")
)

func validateTransportMode(fl validator.FieldLevel) bool {
	return models.IsValidTransportMode(models.TransportMode(fl.Field().String()))
}

func validateTripStatus(fl validator.FieldLevel) bool {
	return models.IsValidTripStatus(models.TripStatus(fl.Field().String()))
}

// ValidateBookRequest checks the booking payload beyond JSON binding:
// the selected option must carry a known mode, a provider, and
// non-negative price and duration.
func ValidateBookRequest(req *models.BookRequest) map[string]string {
	return collectErrors(validate.Struct(req))
}

// ValidatePreference checks a preference payload: user_id present,
// budget non-negative, favorite modes drawn from the mode enum.
func ValidatePreference(pref *models.Preference) map[string]string {
	return collectErrors(validate.Struct(pref))
}

func collectErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldName(fe)] = message(fe)
	}
	return details
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is like "BookRequest.Selection.Mode"; drop the root.
	parts := strings.SplitN(fe.StructNamespace(), ".", 2)
	if len(parts) == 2 {
		return strings.ToLower(parts[1])
	}
	return strings.ToLower(fe.Field())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "transport_mode":
		return ErrInvalidTransportMode.Error()
	case "trip_status":
		return ErrInvalidTripStatus.Error()
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
