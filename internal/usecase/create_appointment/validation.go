package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/salonix/appointment-service/internal/domain"
)

func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if utf8.RuneCountInString(name) < domain.MinClientNameLength {
		return fmt.Errorf("%w: client name must be at least %d characters", ErrInvalidInput, domain.MinClientNameLength)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}
	if !validPhone(req.Phone) {
		return fmt.Errorf("%w: phone must be 7 to 15 digits, optionally prefixed with +", ErrInvalidInput)
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	if req.StaffID == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, req.StartTime); err != nil {
		return fmt.Errorf("%w: start_time must be formatted HH:MM", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service id is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	seen := make(map[string]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id == "" {
			return fmt.Errorf("%w: service id must not be empty", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate service id %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// validPhone accepts an optional leading + followed by 7 to 15 digits.
func validPhone(phone string) bool {
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
