package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/pkg/dbexec"
	"github.com/salonix/appointment-service/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"client_id",
	"staff_id",
	"start_at",
	"end_at",
	"duration_minutes",
	"total_price",
	"status",
	"cancellation_token",
	"confirmation_code",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists appointments and their service associations.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment row. The database assigns the id and the
// created/updated timestamps.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"staff_id",
			"start_at",
			"end_at",
			"duration_minutes",
			"total_price",
			"status",
			"cancellation_token",
			"confirmation_code",
		).
		Values(
			appt.ClientID,
			appt.StaffID,
			appt.StartAt,
			appt.EndAt,
			appt.DurationMinutes,
			appt.TotalPrice,
			appt.Status,
			appt.CancellationToken,
			appt.ConfirmationCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// AddServices inserts the appointment-service join rows, capturing each
// service's price at booking time.
func (r *Repository) AddServices(ctx context.Context, appointmentID string, services []domain.AppointmentService) error {
	executor := dbexec.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("appointment_services").
		Columns("appointment_id", "service_id", "price")
	for _, s := range services {
		insert = insert.Values(appointmentID, s.ServiceID, s.Price)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddServices - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// FindOverlapping returns the occupying appointments of a staff member whose
// [start_at, end_at) range truly intersects rng. Inside a transaction the
// matching rows are locked with FOR UPDATE, so a concurrent booking for the
// same staff member waits for this transaction before it can read them and
// the overlap check plus the subsequent insert stay atomic.
func (r *Repository) FindOverlapping(ctx context.Context, staffID string, rng domain.TimeRange) ([]*domain.Appointment, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"status": occupyingStatusStrings()}).
		Where(squirrel.Lt{"start_at": rng.End}).
		Where(squirrel.Gt{"end_at": rng.Start}).
		OrderBy("start_at ASC")

	if dbexec.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByStaffAndDay returns a staff member's appointments for one day,
// ordered by start time. Cancelled and completed appointments are excluded
// unless the filter asks for them.
func (r *Repository) GetByStaffAndDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"staff_id": filter.StaffID}).
		Where(squirrel.GtOrEq{"start_at": filter.DayStart}).
		Where(squirrel.Lt{"start_at": filter.DayEnd}).
		OrderBy("start_at ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupyingStatusStrings()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByID fetches one appointment.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCancellationToken fetches the appointment matching a cancellation
// token.
func (r *Repository) GetByCancellationToken(ctx context.Context, token string) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"cancellation_token": token}, "GetByCancellationToken")
}

// GetDetails fetches an appointment joined with its client, staff and
// service lines.
func (r *Repository) GetDetails(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	appt, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.AppointmentDetails{Appointment: *appt}

	query, args, err := psqlbuilder.Select("c.id", "c.name", "c.phone", "c.email", "s.id", "s.user_id", "s.name", "s.active").
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("staff s ON s.id = a.staff_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build join query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&details.Client.ID,
		&details.Client.Name,
		&details.Client.Phone,
		&details.Client.Email,
		&details.Staff.ID,
		&details.Staff.UserID,
		&details.Staff.Name,
		&details.Staff.Active,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan client and staff: %w", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("s.id", "s.name", "s.duration_minutes", "aps.price").
		From("appointment_services aps").
		Join("services s ON s.id = aps.service_id").
		Where(squirrel.Eq{"aps.appointment_id": id}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build services query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - execute services query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.AppointmentService
		if err := rows.Scan(&line.ServiceID, &line.Name, &line.DurationMinutes, &line.Price); err != nil {
			return nil, fmt.Errorf("%w: GetDetails - scan service line: %w", ErrScanRow, err)
		}
		details.Services = append(details.Services, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetails - rows error: %w", ErrScanRow, err)
	}

	return details, nil
}

// UpdateStatus transitions an appointment to a new status.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel marks an appointment cancelled and records the cancellation time.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Appointment, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %w", ErrScanRow, method, err)
	}

	return appt, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.StaffID,
		&appt.StartAt,
		&appt.EndAt,
		&appt.DurationMinutes,
		&appt.TotalPrice,
		&appt.Status,
		&appt.CancellationToken,
		&appt.ConfirmationCode,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		appt.CancelledAt = &t
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

func occupyingStatusStrings() []string {
	statuses := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
