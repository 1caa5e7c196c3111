package get_available_dates

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, converter TimezoneConverter) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	if req.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}

	if !converter.IsKnown(req.Timezone) {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	return nil
}
