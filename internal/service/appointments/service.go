// Package appointments manages the lifecycle of existing appointments:
// reads, staff confirmation and completion, and token-based cancellation.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/infra/storage/appointment"
	"github.com/salonix/appointment-service/internal/integrations/mailer"
	"github.com/salonix/appointment-service/internal/service/appointments/models"
	"github.com/salonix/appointment-service/pkg/ptr"
)

const notifyTimeout = 10 * time.Second

// Service exposes appointment lifecycle operations.
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	hours           domain.BusinessHours
	log             Logger
	timeProvider    TimeProvider
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	hours domain.BusinessHours,
	log Logger,
	timeProvider TimeProvider,
) *Service {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		hours:           hours,
		log:             log,
		timeProvider:    timeProvider,
	}
}

// GetByID returns the full appointment view.
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentView, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	details, err := s.appointmentRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.log.Error("appointments: get details %s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return s.buildView(details), nil
}

// Confirm transitions a pending or rescheduled appointment to confirmed and
// emails the client.
func (s *Service) Confirm(ctx context.Context, id string) (*models.AppointmentView, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, txErr := s.appointmentRepo.GetByID(txCtx, id)
		if txErr != nil {
			if errors.Is(txErr, appointment.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: get appointment: %w", ErrInternal, txErr)
		}
		if !appt.CanBeConfirmed() {
			return fmt.Errorf("%w: cannot confirm appointment in status %s", ErrInvalidTransition, appt.Status)
		}
		if txErr = s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); txErr != nil {
			return fmt.Errorf("%w: update status: %w", ErrInternal, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details, err := s.appointmentRepo.GetDetails(ctx, id)
	if err != nil {
		s.log.Error("appointments: reload confirmed %s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info("appointments: confirmed %s", id)
	s.notify(details, notifyConfirmed)

	return s.buildView(details), nil
}

// Complete transitions a confirmed or rescheduled appointment to completed.
// No email is sent; the client was already there.
func (s *Service) Complete(ctx context.Context, id string) (*models.AppointmentView, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, txErr := s.appointmentRepo.GetByID(txCtx, id)
		if txErr != nil {
			if errors.Is(txErr, appointment.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: get appointment: %w", ErrInternal, txErr)
		}
		if !appt.CanBeCompleted() {
			return fmt.Errorf("%w: cannot complete appointment in status %s", ErrInvalidTransition, appt.Status)
		}
		if txErr = s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusCompleted); txErr != nil {
			return fmt.Errorf("%w: update status: %w", ErrInternal, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("appointments: completed %s", id)

	details, err := s.appointmentRepo.GetDetails(ctx, id)
	if err != nil {
		s.log.Error("appointments: reload completed %s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return s.buildView(details), nil
}

// CancelByToken cancels the appointment identified by its cancellation
// token. The token is the only credential; no authentication is required.
func (s *Service) CancelByToken(ctx context.Context, token string) (*models.AppointmentView, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: cancellation token is required", ErrInvalidInput)
	}

	var appointmentID string
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, txErr := s.appointmentRepo.GetByCancellationToken(txCtx, token)
		if txErr != nil {
			if errors.Is(txErr, appointment.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: get by token: %w", ErrInternal, txErr)
		}
		if !appt.CanBeCancelled() {
			return fmt.Errorf("%w: appointment is %s", ErrCannotCancel, appt.Status)
		}
		if txErr = s.appointmentRepo.Cancel(txCtx, appt.ID); txErr != nil {
			return fmt.Errorf("%w: cancel: %w", ErrInternal, txErr)
		}
		appointmentID = appt.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	details, err := s.appointmentRepo.GetDetails(ctx, appointmentID)
	if err != nil {
		s.log.Error("appointments: reload cancelled %s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info("appointments: cancelled %s", appointmentID)
	s.notify(details, notifyCancelled)

	return s.buildView(details), nil
}

// GetStaffDay returns one staff member's schedule for a date. With
// includeInactive the cancelled and completed appointments are listed too,
// so staff can review the full day's history.
func (s *Service) GetStaffDay(ctx context.Context, staffID, date string, includeInactive bool) (*models.StaffDaySchedule, error) {
	if staffID == "" {
		return nil, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}

	dayStart := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.hours.Location)
	list, err := s.appointmentRepo.GetByStaffAndDay(ctx, domain.StaffDayFilter{
		StaffID:         staffID,
		DayStart:        dayStart,
		DayEnd:          dayStart.AddDate(0, 0, 1),
		IncludeInactive: includeInactive,
	})
	if err != nil {
		s.log.Error("appointments: staff day %s %s: %v", staffID, date, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	schedule := &models.StaffDaySchedule{
		StaffID:      staffID,
		Date:         date,
		Appointments: make([]models.StaffDayAppointment, 0, len(list)),
	}
	for _, appt := range list {
		schedule.Appointments = append(schedule.Appointments, models.StaffDayAppointment{
			ID:               appt.ID,
			ConfirmationCode: appt.ConfirmationCode,
			Status:           string(appt.Status),
			StartTime:        appt.StartAt.In(s.hours.Location).Format(domain.TimeFormat),
			EndTime:          appt.EndAt.In(s.hours.Location).Format(domain.TimeFormat),
			DurationMinutes:  appt.DurationMinutes,
			TotalPrice:       appt.TotalPrice,
		})
	}

	return schedule, nil
}

type notifyKind int

const (
	notifyConfirmed notifyKind = iota
	notifyCancelled
)

func (s *Service) notify(details *domain.AppointmentDetails, kind notifyKind) {
	if s.notifier == nil || details.Client.Email == nil {
		return
	}

	send := s.notifier.SendAppointmentConfirmed
	if kind == notifyCancelled {
		send = s.notifier.SendAppointmentCancelled
	}

	names := make([]string, len(details.Services))
	for i, line := range details.Services {
		names[i] = line.Name
	}

	msg := &mailer.Message{
		To:               *details.Client.Email,
		ClientName:       details.Client.Name,
		StaffName:        details.Staff.Name,
		StartAt:          details.StartAt.In(s.hours.Location).Format("Monday, 2 January 2006 at 15:04"),
		Services:         names,
		TotalPrice:       details.TotalPrice,
		ConfirmationCode: details.ConfirmationCode,
	}

	appointmentID := details.ID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		result := send(ctx, msg)
		if !result.Success {
			s.log.Warn("appointments: email for %s failed: %s", appointmentID, result.Error)
		}
	}()
}

func (s *Service) buildView(details *domain.AppointmentDetails) *models.AppointmentView {
	lines := make([]models.ServiceLine, len(details.Services))
	for i, line := range details.Services {
		lines[i] = models.ServiceLine{
			ServiceID:       line.ServiceID,
			Name:            line.Name,
			DurationMinutes: line.DurationMinutes,
			Price:           line.Price,
		}
	}

	localStart := details.StartAt.In(s.hours.Location)
	localEnd := details.EndAt.In(s.hours.Location)

	view := &models.AppointmentView{
		ID:               details.ID,
		ConfirmationCode: details.ConfirmationCode,
		Status:           string(details.Status),
		ClientName:       details.Client.Name,
		ClientPhone:      details.Client.Phone,
		ClientEmail:      details.Client.Email,
		StaffID:          details.Staff.ID,
		StaffName:        details.Staff.Name,
		Date:             localStart.Format(domain.DateFormat),
		StartTime:        localStart.Format(domain.TimeFormat),
		EndTime:          localEnd.Format(domain.TimeFormat),
		DurationMinutes:  details.DurationMinutes,
		TotalPrice:       details.TotalPrice,
		Services:         lines,
	}
	if details.CancelledAt != nil {
		view.CancelledAt = ptr.Ptr(details.CancelledAt.In(s.hours.Location).Format(time.RFC3339))
	}

	return view
}
