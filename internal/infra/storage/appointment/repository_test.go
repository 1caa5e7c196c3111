package appointment

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// fakeExecutor captures the statements the repository issues.
type fakeExecutor struct {
	query string
	args  []interface{}
}

func (f *fakeExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	f.query, f.args = query, args
	return nil, sql.ErrNoRows
}

func (f *fakeExecutor) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	f.query, f.args = query, args
	return nil
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query, f.args = query, args
	return fakeResult{rows: 1}, nil
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestUpdateStatus(t *testing.T) {
	t.Run("decline clears calendar columns", func(t *testing.T) {
		executor := &fakeExecutor{}
		repo := NewRepository(executor)

		err := repo.UpdateStatus(context.Background(), 10, domain.StatusDeclined, nil, nil)
		require.NoError(t, err)

		// The columns are always part of the SET list: a nil pointer writes
		// NULL instead of leaving a stale event reference behind.
		assert.Contains(t, executor.query, "calendar_event_id = $2")
		assert.Contains(t, executor.query, "meeting_link = $3")

		require.Len(t, executor.args, 4)
		assert.Equal(t, domain.StatusDeclined, executor.args[0])
		assert.Nil(t, executor.args[1])
		assert.Nil(t, executor.args[2])
		assert.Equal(t, int64(10), executor.args[3])
	})

	t.Run("confirm writes event id and meeting link", func(t *testing.T) {
		executor := &fakeExecutor{}
		repo := NewRepository(executor)

		err := repo.UpdateStatus(context.Background(), 10, domain.StatusConfirmed,
			ptr.Ptr("event-10"), ptr.Ptr("https://meet.google.com/abc-defg-hij"))
		require.NoError(t, err)

		require.Len(t, executor.args, 4)
		assert.Equal(t, domain.StatusConfirmed, executor.args[0])
		assert.Equal(t, ptr.Ptr("event-10"), executor.args[1])
		assert.Equal(t, ptr.Ptr("https://meet.google.com/abc-defg-hij"), executor.args[2])
	})
}
