package get_availability

import (
	"fmt"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service id is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per request", ErrInvalidInput, domain.MaxServicesPerBooking)
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
