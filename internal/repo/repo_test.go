package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/utils/pgcontainer"
)

func TestMain(m *testing.M) {
	log := slog.Default()
	code, err := runMain(m, log)
	if err != nil {
		log.ErrorContext(context.TODO(),
			"unexpected test failure",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	os.Exit(code)
}

func runMain(m *testing.M, log *slog.Logger) (int, error) {
	pg := pgcontainer.New(log)
	getDSN = func() string {
		return pg.GetDSN()
	}
	err := pg.RunContainer()
	defer pg.Close()
	if errors.Is(err, pgcontainer.ErrDockerUnavailable) {
		log.LogAttrs(context.TODO(), slog.LevelWarn,
			"skipping repository tests", slog.Any(model.KeyLoggerError, err))
		return 0, nil
	}
	if err != nil {
		return 1, fmt.Errorf("failed to run docker container: %w", err)
	}

	if err = initGetDBManager(log); err != nil {
		return 1, fmt.Errorf("failed to init test DB: %w", err)
	}

	db := getDBManager()
	defer db.Close()

	exitCode := m.Run()
	return exitCode, nil
}

func TestWithRetry(t *testing.T) {
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })
	transient := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   bool
	}{
		{"success on first attempt", 0, nil, 1, false},
		{"transient error then success", 2, transient, 3, false},
		{"attempts exhausted", 10, transient, 3, true},
		{"non-retryable error is returned at once", 10, errors.New("boom"), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got, err := WithRetry[int](context.Background(), func() (int, error) {
				calls++
				if calls <= tt.failures {
					return 0, tt.err
				}
				return 42, nil
			})
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 42, got)
		})
	}

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		retryDelays = []time.Duration{time.Hour}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := WithRetry[int](ctx, func() (int, error) { return 0, transient })
		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, isRetryableError(err))
	})
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, true},
		{"serialization failure",
			fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), true},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, true},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false},
		{"plain error", errors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, isUniqueViolation(errors.New("x")))
}
