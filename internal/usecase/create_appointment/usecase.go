// Package create_appointment books a new appointment atomically. The whole
// booking runs in one serializable transaction so two clients can never hold
// overlapping time with the same staff member.
package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/infra/storage/catalog"
	"github.com/salonix/appointment-service/internal/integrations/mailer"
	"github.com/salonix/appointment-service/pkg/txmanager"
)

const notifyTimeout = 10 * time.Second

// UseCase books appointments.
type UseCase struct {
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	hours           domain.BusinessHours
	log             Logger
	timeProvider    TimeProvider
	cancelURLBase   string
}

// NewUseCase creates the booking use case. cancelURLBase is the public URL
// prefix the cancellation token is appended to in confirmation emails; pass
// an empty string to omit the link.
func NewUseCase(
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	hours domain.BusinessHours,
	log Logger,
	timeProvider TimeProvider,
	cancelURLBase string,
) *UseCase {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &UseCase{
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		hours:           hours,
		log:             log,
		timeProvider:    timeProvider,
		cancelURLBase:   cancelURLBase,
	}
}

// Execute validates the request and books the appointment. Every check that
// guards the double-booking invariant runs inside the transaction, after the
// overlap query has locked the staff member's competing rows. On success the
// confirmation email is sent after commit, outside the transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	startAt, err := uc.parseStart(req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		appt     *domain.Appointment
		client   *domain.Client
		staff    *domain.Staff
		services []domain.AppointmentService
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error

		staff, txErr = uc.catalogRepo.FindActiveStaff(txCtx, req.StaffID)
		if txErr != nil {
			if errors.Is(txErr, catalog.ErrStaffNotFound) {
				return ErrStaffUnavailable
			}
			return fmt.Errorf("%w: find staff: %w", ErrInternal, txErr)
		}

		var durationMinutes int
		var totalPrice float64
		services, durationMinutes, totalPrice, txErr = uc.resolveServices(txCtx, req.ServiceIDs)
		if txErr != nil {
			return txErr
		}

		endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)

		// A booking starting exactly now is already in the past by the time
		// it commits.
		if !startAt.After(now) {
			return ErrPastDate
		}

		blocked, txErr := uc.catalogRepo.IsBlockedDay(txCtx, uc.hours.StartOfDay(startAt))
		if txErr != nil {
			return fmt.Errorf("%w: check blocked day: %w", ErrInternal, txErr)
		}
		if blocked {
			return ErrDayBlocked
		}

		if !uc.hours.ContainsRange(startAt, endAt) {
			return ErrOutOfHours
		}

		if durationMinutes > uc.hours.MaxAppointmentMinutes {
			return fmt.Errorf("%w: combined duration %d exceeds %d minutes",
				ErrInvalidDuration, durationMinutes, uc.hours.MaxAppointmentMinutes)
		}

		// Locks every occupying appointment intersecting the range, so a
		// concurrent booking for the same staff member serializes here.
		overlapping, txErr := uc.appointmentRepo.FindOverlapping(txCtx, req.StaffID, domain.TimeRange{Start: startAt, End: endAt})
		if txErr != nil {
			return fmt.Errorf("%w: find overlapping: %w", ErrInternal, txErr)
		}
		if len(overlapping) > 0 {
			return ErrScheduleConflict
		}

		client, txErr = uc.clientRepo.UpsertByPhone(txCtx, &domain.Client{
			Name:  strings.TrimSpace(req.ClientName),
			Phone: req.Phone,
			Email: req.Email,
		})
		if txErr != nil {
			return fmt.Errorf("%w: upsert client: %w", ErrInternal, txErr)
		}

		appt, txErr = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:          client.ID,
			StaffID:           staff.ID,
			StartAt:           startAt,
			EndAt:             endAt,
			DurationMinutes:   durationMinutes,
			TotalPrice:        totalPrice,
			Status:            domain.StatusPending,
			CancellationToken: uuid.NewString(),
			ConfirmationCode:  confirmationCode(now),
		})
		if txErr != nil {
			return fmt.Errorf("%w: create appointment: %w", ErrInternal, txErr)
		}

		if txErr = uc.appointmentRepo.AddServices(txCtx, appt.ID, services); txErr != nil {
			return fmt.Errorf("%w: add services: %w", ErrInternal, txErr)
		}

		return nil
	})
	if err != nil {
		return nil, uc.translateTxError(err)
	}

	uc.log.Info("create_appointment: booked %s for staff %s at %s, code %s",
		appt.ID, appt.StaffID, appt.StartAt.Format(time.RFC3339), appt.ConfirmationCode)

	uc.notifyCreated(appt, client, staff, services)

	return uc.buildResponse(appt, services), nil
}

func (uc *UseCase) parseStart(date, startTime string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat+" "+domain.TimeFormat, date+" "+startTime, uc.hours.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date or start_time", ErrInvalidInput)
	}
	return t, nil
}

// resolveServices maps the requested ids to catalog services, preserving
// request order. Missing ids and inactive services are reported separately.
func (uc *UseCase) resolveServices(ctx context.Context, ids []string) ([]domain.AppointmentService, int, float64, error) {
	found, err := uc.catalogRepo.FindServices(ctx, ids)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: find services: %w", ErrInternal, err)
	}

	byID := make(map[string]*domain.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	var missing, inactive []string
	lines := make([]domain.AppointmentService, 0, len(ids))
	duration := 0
	total := 0.0
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if !svc.Active {
			inactive = append(inactive, id)
			continue
		}
		lines = append(lines, domain.AppointmentService{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
		duration += svc.DurationMinutes
		total += svc.Price
	}
	if len(missing) > 0 {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrServicesNotFound, strings.Join(missing, ", "))
	}
	if len(inactive) > 0 {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrServiceUnavailable, strings.Join(inactive, ", "))
	}

	return lines, duration, total, nil
}

// translateTxError maps transaction-level failures onto use case sentinels.
// Domain errors returned by the transaction body pass through unchanged.
func (uc *UseCase) translateTxError(err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerialization):
		uc.log.Warn("create_appointment: transaction conflict: %v", err)
		return fmt.Errorf("%w: %v", ErrTxConflict, err)
	case errors.Is(err, txmanager.ErrTimeout):
		uc.log.Warn("create_appointment: transaction timeout: %v", err)
		return fmt.Errorf("%w: %v", ErrTxTimeout, err)
	case errors.Is(err, txmanager.ErrBegin), errors.Is(err, txmanager.ErrCommit):
		uc.log.Error("create_appointment: transaction failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return err
}

// notifyCreated sends the confirmation email in the background. The booking
// already committed; a delivery failure must not surface to the caller.
func (uc *UseCase) notifyCreated(appt *domain.Appointment, client *domain.Client, staff *domain.Staff, services []domain.AppointmentService) {
	if uc.notifier == nil || client.Email == nil {
		return
	}

	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}

	msg := uc.buildMessage(appt, *client.Email, client.Name, staff.Name, names)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		result := uc.notifier.SendAppointmentCreated(ctx, msg)
		if !result.Success {
			uc.log.Warn("create_appointment: confirmation email for %s failed: %s", appt.ID, result.Error)
		}
	}()
}

func (uc *UseCase) buildResponse(appt *domain.Appointment, services []domain.AppointmentService) *Response {
	lines := make([]ServiceLine, len(services))
	for i, s := range services {
		lines[i] = ServiceLine{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	localStart := appt.StartAt.In(uc.hours.Location)
	localEnd := appt.EndAt.In(uc.hours.Location)

	return &Response{
		AppointmentID:     appt.ID,
		ConfirmationCode:  appt.ConfirmationCode,
		CancellationToken: appt.CancellationToken,
		Status:            string(appt.Status),
		StaffID:           appt.StaffID,
		Date:              localStart.Format(domain.DateFormat),
		StartTime:         localStart.Format(domain.TimeFormat),
		EndTime:           localEnd.Format(domain.TimeFormat),
		DurationMinutes:   appt.DurationMinutes,
		TotalPrice:        appt.TotalPrice,
		Services:          lines,
	}
}

func (uc *UseCase) buildMessage(appt *domain.Appointment, email, clientName, staffName string, serviceNames []string) *mailer.Message {
	cancelURL := ""
	if uc.cancelURLBase != "" {
		cancelURL = strings.TrimRight(uc.cancelURLBase, "/") + "/" + appt.CancellationToken
	}
	return &mailer.Message{
		To:               email,
		ClientName:       clientName,
		StaffName:        staffName,
		StartAt:          appt.StartAt.In(uc.hours.Location).Format("Monday, 2 January 2006 at 15:04"),
		Services:         serviceNames,
		TotalPrice:       appt.TotalPrice,
		ConfirmationCode: appt.ConfirmationCode,
		CancelURL:        cancelURL,
	}
}

// confirmationCode builds the human-readable booking reference, the booking
// date followed by a random four-digit suffix.
func confirmationCode(now time.Time) string {
	return fmt.Sprintf("%s-%04d", now.Format("20060102"), 1000+rand.Intn(9000))
}
