package book_appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, converter TimezoneConverter) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if len(req.CustomerEmail) > domain.MaxCustomerEmailLength || !emailPattern.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if req.CustomerPhone != nil && len(*req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if req.CustomerMessage != nil && len(*req.CustomerMessage) > domain.MaxCustomerMessageLength {
		return fmt.Errorf("%w: customer message is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}
	if !converter.IsKnown(req.Timezone) {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(requestDate time.Time, now time.Time) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}
	return nil
}
