package forecasting

import (
	"context"
	"math"
	"time"

	"github.com/sustain-inventory/inventory-api/pkg/log"
)

// AttemptState é o estado de uma requisição de previsão
type AttemptState int

const (
	StateIdle AttemptState = iota
	StateSending
	StateSuccess
	StateTransientFailure
	StateFatalFailure
	StateDegraded
)

func (s AttemptState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSending:
		return "Sending"
	case StateSuccess:
		return "Success"
	case StateTransientFailure:
		return "TransientFailure"
	case StateFatalFailure:
		return "FatalFailure"
	case StateDegraded:
		return "Degraded"
	default:
		return "Unknown"
	}
}

// Terminal indica se a requisição terminou
func (s AttemptState) Terminal() bool {
	return s == StateSuccess || s == StateDegraded
}

// Outcome é o resultado de uma tentativa
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTransient
	OutcomeFatal
)

// Next é a função de transição. attempt é a tentativa atual (começa em 1).
// Uma falha transitória na última tentativa vira FatalFailure.
func Next(state AttemptState, outcome Outcome, attempt, maxAttempts int) AttemptState {
	switch state {
	case StateIdle, StateTransientFailure:
		return StateSending
	case StateSending:
		switch outcome {
		case OutcomeSuccess:
			return StateSuccess
		case OutcomeTransient:
			if attempt < maxAttempts {
				return StateTransientFailure
			}
			return StateFatalFailure
		default:
			return StateFatalFailure
		}
	case StateFatalFailure:
		return StateDegraded
	default:
		return state
	}
}

type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Second,
		Multiplier:   2,
	}
}

// Backoff devolve a espera depois da falha da tentativa attempt: InitialDelay * Multiplier^(attempt-1)
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	return time.Duration(float64(p.InitialDelay) * math.Pow(multiplier, float64(attempt-1)))
}

func (p RetryPolicy) maxAttempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// ExhaustedError indica que todas as tentativas falharam de forma transitória
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return ErrRetriesExhausted.Error() + ": " + e.Last.Error()
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Retrier executa uma chamada seguindo a máquina de estados e a política de backoff
type Retrier struct {
	policy       RetryPolicy
	sleep        func(ctx context.Context, d time.Duration) error
	onTransition func(from, to AttemptState, attempt int)
}

func NewRetrier(policy RetryPolicy) *Retrier {
	return &Retrier{
		policy: policy,
		sleep:  sleepContext,
	}
}

// WithSleep troca a espera entre tentativas (usado nos testes)
func (r *Retrier) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Retrier {
	r.sleep = sleep
	return r
}

// OnTransition registra um observador das mudanças de estado
func (r *Retrier) OnTransition(fn func(from, to AttemptState, attempt int)) *Retrier {
	r.onTransition = fn
	return r
}

// Do chama call até ter sucesso, falhar de forma fatal ou esgotar as tentativas.
// Devolve o número de tentativas feitas. Esgotar as tentativas gera *ExhaustedError;
// falhas fatais são devolvidas como vieram.
func (r *Retrier) Do(ctx context.Context, call func(ctx context.Context) error, classify func(error) Outcome) (int, error) {
	maxAttempts := r.policy.maxAttempts()
	logger := log.ForContext(ctx)

	state := StateIdle
	attempt := 1
	move := func(to AttemptState) {
		if r.onTransition != nil {
			r.onTransition(state, to, attempt)
		}
		state = to
	}

	move(Next(state, OutcomeSuccess, attempt, maxAttempts))

	for {
		err := call(ctx)
		outcome := OutcomeSuccess
		if err != nil {
			outcome = classify(err)
		}

		move(Next(state, outcome, attempt, maxAttempts))

		switch state {
		case StateSuccess:
			return attempt, nil
		case StateFatalFailure:
			if outcome == OutcomeTransient {
				return attempt, &ExhaustedError{Attempts: attempt, Last: err}
			}
			return attempt, err
		}

		delay := r.policy.Backoff(attempt)
		logger.WithFields(log.Fields{
			"attempt": attempt,
			"state":   state.String(),
		}).WithError(err).Warnf("forecast: falha transitória, nova tentativa em %s", delay)

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			move(StateFatalFailure)
			return attempt, sleepErr
		}

		attempt++
		move(Next(state, OutcomeSuccess, attempt, maxAttempts))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
