package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/pkg/dbexec"
	"github.com/salonix/appointment-service/pkg/psqlbuilder"
)

// Repository persists salon clients. Clients are keyed by phone number.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a client repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone inserts the client or, when the phone number already exists,
// refreshes the stored name. The email is only overwritten when a new one is
// provided, so an omitted email never erases a known address.
func (r *Repository) UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("name", "phone", "email").
		Values(c.Name, c.Phone, c.Email).
		Suffix(`ON CONFLICT (phone) DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(EXCLUDED.email, clients.email),
			updated_at = NOW()
		RETURNING id, name, phone, email, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build query: %v", ErrBuildQuery, err)
	}

	var out domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&out.ID,
		&out.Name,
		&out.Phone,
		&out.Email,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - scan client: %w", ErrScanRow, err)
	}

	return &out, nil
}

// GetByID fetches one client.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	executor := dbexec.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "email", "created_at", "updated_at").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build query: %v", ErrBuildQuery, err)
	}

	var out domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&out.ID,
		&out.Name,
		&out.Phone,
		&out.Email,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %w", ErrScanRow, err)
	}

	return &out, nil
}
