// Package orders — работа с заказами на стороне BFF: мутации с учётом кэша,
// чтение через кэш запросов и применение событий об изменениях.
package orders

import (
	"context"
	"sync"

	"github.com/Gunvolt24/agent_orders/pkg/metrics"
)

// State — состояние мутации.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Callbacks — пользовательские обработчики завершения.
// Вызываются после встроенной работы с кэшем: кэш к этому моменту уже согласован.
type Callbacks[In, Out any] struct {
	OnSuccess func(ctx context.Context, out Out, in In)
	OnError   func(ctx context.Context, err error, in In)
	OnSettled func(ctx context.Context, out Out, err error, in In)
}

// Mutation — единица работы над удалённым API: idle → pending → succeeded|failed.
// После завершения мутацию можно запускать снова.
type Mutation[In, Out any] struct {
	op string

	// validate — проверка до сети; ошибка переводит мутацию в failed без запроса.
	validate func(ctx context.Context, in In) error
	// guard — сериализация мутаций (например, по id); держится на время запроса и работы с кэшем.
	guard func(ctx context.Context, in In) (unlock func(), err error)
	// run — сетевой вызов.
	run func(ctx context.Context, in In) (Out, error)
	// onSuccess — встроенная работа с кэшем.
	onSuccess func(ctx context.Context, in In, out Out)

	mu      sync.Mutex
	state   State
	lastErr error
}

// NewMutation — мутация op поверх сетевого вызова run и встроенной работы с кэшем onSuccess (может быть nil).
func NewMutation[In, Out any](op string, run func(context.Context, In) (Out, error), onSuccess func(context.Context, In, Out)) *Mutation[In, Out] {
	return &Mutation[In, Out]{op: op, run: run, onSuccess: onSuccess}
}

// State — текущее состояние.
func (m *Mutation[In, Out]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err — ошибка последнего запуска (nil, если он успешен или ещё не завершён).
func (m *Mutation[In, Out]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Mutate — запустить мутацию.
// Порядок: pending → (validate) → (guard) → run → кэш → OnSuccess|OnError → OnSettled.
// Если ctx отменён к моменту ответа, ответ отбрасывается: кэш не трогается, обработчики не вызываются.
func (m *Mutation[In, Out]) Mutate(ctx context.Context, in In, cb Callbacks[In, Out]) (Out, error) {
	m.setState(StatePending, nil)

	out, err := m.execute(ctx, in)
	if err != nil && ctx.Err() != nil {
		var zero Out
		m.setState(StateFailed, ctx.Err())
		metrics.OrderMutations.WithLabelValues(m.op, "discarded").Inc()
		return zero, ctx.Err()
	}

	if err != nil {
		var zero Out
		m.setState(StateFailed, err)
		metrics.OrderMutations.WithLabelValues(m.op, "failed").Inc()
		if cb.OnError != nil {
			cb.OnError(ctx, err, in)
		}
		if cb.OnSettled != nil {
			cb.OnSettled(ctx, zero, err, in)
		}
		return zero, err
	}

	m.setState(StateSucceeded, nil)
	metrics.OrderMutations.WithLabelValues(m.op, "succeeded").Inc()
	if cb.OnSuccess != nil {
		cb.OnSuccess(ctx, out, in)
	}
	if cb.OnSettled != nil {
		cb.OnSettled(ctx, out, nil, in)
	}
	return out, nil
}

// execute — всё, что выполняется под guard: сеть и встроенная работа с кэшем.
func (m *Mutation[In, Out]) execute(ctx context.Context, in In) (Out, error) {
	var zero Out

	if m.validate != nil {
		if err := m.validate(ctx, in); err != nil {
			return zero, err
		}
	}

	if m.guard != nil {
		unlock, err := m.guard(ctx, in)
		if err != nil {
			return zero, err
		}
		defer unlock()
	}

	out, err := m.run(ctx, in)
	if err != nil {
		return zero, err
	}
	if ctx.Err() != nil {
		return zero, ctx.Err()
	}
	if m.onSuccess != nil {
		m.onSuccess(ctx, in, out)
	}
	return out, nil
}

func (m *Mutation[In, Out]) setState(s State, err error) {
	m.mu.Lock()
	m.state = s
	m.lastErr = err
	m.mu.Unlock()
}
