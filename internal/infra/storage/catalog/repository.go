package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/pkg/dbexec"
	"github.com/salonix/appointment-service/pkg/psqlbuilder"
)

// Repository reads the salon catalog: staff, services and blocked days.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveStaff returns the staff member only if both the staff record and
// the linked user account are active.
func (r *Repository) FindActiveStaff(ctx context.Context, staffID string) (*domain.Staff, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.user_id", "s.name", "s.active").
		From("staff s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.id": staffID}).
		Where(squirrel.Eq{"s.active": true}).
		Where(squirrel.Eq{"u.active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveStaff - build query: %v", ErrBuildQuery, err)
	}

	var staff domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.Name,
		&staff.Active,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveStaff - scan staff: %w", ErrScanRow, err)
	}

	return &staff, nil
}

// FindServices fetches the services matching the given ids, active or not.
// Callers decide whether missing or inactive entries are an error. Results
// preserve no particular order.
func (r *Repository) FindServices(ctx context.Context, ids []string) ([]*domain.Service, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price", "active").
		From("services").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindServices - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.Price, &svc.Active); err != nil {
			return nil, fmt.Errorf("%w: FindServices - scan service: %w", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindServices - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// IsBlockedDay reports whether the given calendar date is blocked for
// booking. The date is compared by its calendar day, time of day is ignored.
func (r *Repository) IsBlockedDay(ctx context.Context, day time.Time) (bool, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_days").
		Where(squirrel.Eq{"day": day.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsBlockedDay - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsBlockedDay - scan count: %w", ErrScanRow, err)
	}

	return count > 0, nil
}
