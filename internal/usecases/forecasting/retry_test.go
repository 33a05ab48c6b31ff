package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQuota = errors.New("quota")

func classifyQuota(err error) Outcome {
	if errors.Is(err, errQuota) {
		return OutcomeTransient
	}
	return OutcomeFatal
}

// recordingSleep registra as esperas sem dormir de verdade
type recordingSleep struct {
	delays []time.Duration
}

func (r *recordingSleep) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		state   AttemptState
		outcome Outcome
		attempt int
		want    AttemptState
	}{
		{"idle envia", StateIdle, OutcomeSuccess, 1, StateSending},
		{"sucesso", StateSending, OutcomeSuccess, 1, StateSuccess},
		{"transitória com tentativas restantes", StateSending, OutcomeTransient, 2, StateTransientFailure},
		{"transitória na última tentativa", StateSending, OutcomeTransient, 3, StateFatalFailure},
		{"fatal", StateSending, OutcomeFatal, 1, StateFatalFailure},
		{"nova tentativa", StateTransientFailure, OutcomeSuccess, 2, StateSending},
		{"fatal degrada", StateFatalFailure, OutcomeFatal, 1, StateDegraded},
		{"sucesso é terminal", StateSuccess, OutcomeFatal, 1, StateSuccess},
		{"degradado é terminal", StateDegraded, OutcomeSuccess, 1, StateDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.state, tt.outcome, tt.attempt, 3))
		})
	}

	assert.True(t, StateSuccess.Terminal())
	assert.True(t, StateDegraded.Terminal())
	assert.False(t, StateTransientFailure.Terminal())
}

func TestRetryPolicy_Backoff(t *testing.T) {
	policy := DefaultRetryPolicy()

	assert.Equal(t, 2*time.Second, policy.Backoff(1))
	assert.Equal(t, 4*time.Second, policy.Backoff(2))
	assert.Equal(t, 8*time.Second, policy.Backoff(3))
	assert.Equal(t, 2*time.Second, policy.Backoff(0))

	flat := RetryPolicy{MaxAttempts: 3, InitialDelay: time.Second, Multiplier: 0}
	assert.Equal(t, time.Second, flat.Backoff(3))
}

func TestRetrier_Do(t *testing.T) {
	t.Run("esgota as tentativas em falhas de cota", func(t *testing.T) {
		sleeper := &recordingSleep{}
		var transitions []AttemptState
		retrier := NewRetrier(DefaultRetryPolicy()).
			WithSleep(sleeper.sleep).
			OnTransition(func(_, to AttemptState, _ int) { transitions = append(transitions, to) })

		calls := 0
		attempts, err := retrier.Do(context.Background(), func(context.Context) error {
			calls++
			return errQuota
		}, classifyQuota)

		var exhausted *ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.ErrorIs(t, err, errQuota)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 3, exhausted.Attempts)
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeper.delays)
		assert.Equal(t, []AttemptState{
			StateSending, StateTransientFailure,
			StateSending, StateTransientFailure,
			StateSending, StateFatalFailure,
		}, transitions)
	})

	t.Run("falha fatal não é repetida", func(t *testing.T) {
		sleeper := &recordingSleep{}
		fatal := errors.New("bad request")

		calls := 0
		attempts, err := NewRetrier(DefaultRetryPolicy()).WithSleep(sleeper.sleep).Do(context.Background(), func(context.Context) error {
			calls++
			return fatal
		}, classifyQuota)

		assert.ErrorIs(t, err, fatal)
		var exhausted *ExhaustedError
		assert.False(t, errors.As(err, &exhausted))
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, attempts)
		assert.Empty(t, sleeper.delays)
	})

	t.Run("recupera na segunda tentativa", func(t *testing.T) {
		sleeper := &recordingSleep{}

		calls := 0
		attempts, err := NewRetrier(DefaultRetryPolicy()).WithSleep(sleeper.sleep).Do(context.Background(), func(context.Context) error {
			calls++
			if calls == 1 {
				return errQuota
			}
			return nil
		}, classifyQuota)

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, []time.Duration{2 * time.Second}, sleeper.delays)
	})

	t.Run("contexto cancelado durante a espera", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		policy := RetryPolicy{MaxAttempts: 5, InitialDelay: time.Hour, Multiplier: 2}
		calls := 0
		_, err := NewRetrier(policy).Do(ctx, func(context.Context) error {
			calls++
			return errQuota
		}, classifyQuota)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("limite mínimo de uma tentativa", func(t *testing.T) {
		calls := 0
		_, err := NewRetrier(RetryPolicy{}).Do(context.Background(), func(context.Context) error {
			calls++
			return errQuota
		}, classifyQuota)

		var exhausted *ExhaustedError
		assert.ErrorAs(t, err, &exhausted)
		assert.Equal(t, 1, calls)
	})
}
