// Package txmanager runs functions inside database transactions with a
// bounded wall-clock timeout. Serialization failures and lock timeouts are
// translated into sentinel errors so callers can report them as retryable.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/salonix/appointment-service/pkg/dbexec"
)

var (
	// ErrSerialization is returned when the database aborts the transaction
	// due to a serialization conflict or deadlock. The caller may retry.
	ErrSerialization = errors.New("txmanager: serialization conflict")

	// ErrTimeout is returned when the transaction exceeds its wall-clock
	// timeout. The transaction is rolled back entirely.
	ErrTimeout = errors.New("txmanager: transaction timed out")

	// ErrBegin is returned when a transaction cannot be started.
	ErrBegin = errors.New("txmanager: failed to begin transaction")

	// ErrCommit is returned when the commit itself fails for a reason other
	// than a serialization conflict.
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

// Postgres error codes that indicate the transaction lost a race and should
// be retried by the caller.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

// TransactionManager begins transactions on a *sql.DB and exposes them to
// repositories through the context (see pkg/dbexec).
type TransactionManager struct {
	db      *sql.DB
	timeout time.Duration
}

// New creates a transaction manager. Every transaction is bounded by the
// given timeout; on expiry it is rolled back and reported as ErrTimeout.
func New(db *sql.DB, timeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, timeout: timeout}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. Any error
// returned by fn rolls the whole transaction back.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBegin, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbexec.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return Translate(err)
	}

	if err := tx.Commit(); err != nil {
		if translated := Translate(err); translated != err {
			return translated
		}
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	return nil
}

// Translate maps storage-level conflict and timeout signals onto the package
// sentinels. Errors that carry no such signal are returned unchanged, so
// domain errors from fn propagate untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
			return fmt.Errorf("%w: %v", ErrSerialization, err)
		}
	}

	return err
}
