package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateSerializationCodes(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		t.Run(code, func(t *testing.T) {
			err := fmt.Errorf("query failed: %w", &pq.Error{Code: pq.ErrorCode(code)})
			assert.ErrorIs(t, Translate(err), ErrSerialization)
		})
	}
}

// Repositories prefix driver errors with their own sentinel. The pq error
// must stay visible through that extra layer of wrapping.
func TestTranslateRepositoryWrappedError(t *testing.T) {
	errExec := errors.New("repository: failed to execute query")
	err := fmt.Errorf("%w: FindOverlapping - execute query: %w",
		errExec, &pq.Error{Code: "40001"})
	assert.ErrorIs(t, Translate(err), ErrSerialization)
}

func TestTranslateDeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("query failed: %w", context.DeadlineExceeded)
	assert.ErrorIs(t, Translate(err), ErrTimeout)
}

func TestTranslatePassesThroughOtherErrors(t *testing.T) {
	sentinel := errors.New("domain failure")
	assert.Equal(t, sentinel, Translate(sentinel))

	otherPq := fmt.Errorf("query failed: %w", &pq.Error{Code: "23505"})
	assert.Equal(t, otherPq, Translate(otherPq))
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}
