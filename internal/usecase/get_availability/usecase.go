// Package get_availability computes the free booking slots of one staff
// member for a combination of services on a given date.
package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/infra/storage/catalog"
)

// UseCase answers availability queries. Reads run outside a transaction:
// the result is advisory and the booking path re-validates under lock.
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	log             Logger
	timeProvider    TimeProvider
}

// NewUseCase creates the availability use case.
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	hours domain.BusinessHours,
	log Logger,
	timeProvider TimeProvider,
) *UseCase {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		hours:           hours,
		log:             log,
		timeProvider:    timeProvider,
	}
}

// Execute validates the query, sums the service durations and returns every
// slot of that combined duration that fits the staff member's day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date, _ := time.Parse(domain.DateFormat, req.Date)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.hours.Location)

	now := uc.timeProvider.Now().In(uc.hours.Location)
	if day.Before(uc.hours.StartOfDay(now)) {
		return nil, ErrPastDate
	}

	if _, err := uc.catalogRepo.FindActiveStaff(ctx, req.StaffID); err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		uc.log.Error("get_availability: find staff %s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	services, err := uc.catalogRepo.FindServices(ctx, req.ServiceIDs)
	if err != nil {
		uc.log.Error("get_availability: find services: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	durationMinutes, err := totalDuration(req.ServiceIDs, services)
	if err != nil {
		return nil, err
	}
	if durationMinutes > uc.hours.MaxAppointmentMinutes {
		return nil, fmt.Errorf("%w: combined duration %d exceeds %d minutes",
			ErrInvalidDuration, durationMinutes, uc.hours.MaxAppointmentMinutes)
	}

	resp := &Response{
		Date:            req.Date,
		StaffID:         req.StaffID,
		DurationMinutes: durationMinutes,
		Slots:           []SlotResponse{},
	}

	blocked, err := uc.catalogRepo.IsBlockedDay(ctx, day)
	if err != nil {
		uc.log.Error("get_availability: check blocked day: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if blocked {
		return resp, nil
	}

	windowStart, windowEnd := searchWindow(uc.hours, day, durationMinutes, now)
	if windowStart.After(windowEnd) {
		return resp, nil
	}

	appointments, err := uc.appointmentRepo.GetByStaffAndDay(ctx, domain.StaffDayFilter{
		StaffID:  req.StaffID,
		DayStart: uc.hours.StartOfDay(day),
		DayEnd:   uc.hours.StartOfDay(day).AddDate(0, 0, 1),
	})
	if err != nil {
		uc.log.Error("get_availability: load appointments: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	busy := make([]domain.TimeRange, 0, len(appointments))
	for _, appt := range appointments {
		busy = append(busy, appt.Range())
	}

	for _, slot := range buildSlots(uc.hours, windowStart, windowEnd, durationMinutes, busy) {
		resp.Slots = append(resp.Slots, SlotResponse{
			Start: slot.Start.In(uc.hours.Location).Format(domain.TimeFormat),
			End:   slot.End.In(uc.hours.Location).Format(domain.TimeFormat),
		})
	}

	return resp, nil
}

// totalDuration sums the durations of the requested services, failing when
// any id is missing from the catalog or points at an inactive service.
func totalDuration(requestedIDs []string, found []*domain.Service) (int, error) {
	byID := make(map[string]*domain.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	var missing []string
	total := 0
	for _, id := range requestedIDs {
		svc, ok := byID[id]
		if !ok || !svc.Active {
			missing = append(missing, id)
			continue
		}
		total += svc.DurationMinutes
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrServicesNotFound, strings.Join(missing, ", "))
	}
	return total, nil
}
