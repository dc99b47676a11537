package cooldown

import (
	"context"
	"sync"
	"time"
)

// Ticker - источник тиков обратного отсчёта
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }

func (t *timeTicker) Stop() { t.t.Stop() }

// NewTimeTicker - тикер на основе time.Ticker
func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

// Countdown - обратный отсчёт с шагом Interval.
// Останавливается на нуле, по Stop или при отмене контекста.
type Countdown struct {
	Interval  time.Duration
	NewTicker TickerFactory

	mu        sync.Mutex
	remaining int
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewCountdown() *Countdown {
	return &Countdown{Interval: time.Second, NewTicker: NewTimeTicker}
}

// Start запускает отсчёт с from; onTick получает остаток после каждого тика.
// Предыдущий отсчёт останавливается.
func (c *Countdown) Start(ctx context.Context, from int, onTick func(remaining int)) {
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.remaining = from
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	if from <= 0 {
		cancel()
		close(done)
		return
	}
	go c.run(ctx, c.NewTicker(c.Interval), onTick, done)
}

func (c *Countdown) run(ctx context.Context, ticker Ticker, onTick func(int), done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			c.mu.Lock()
			c.remaining--
			left := c.remaining
			c.mu.Unlock()

			if onTick != nil {
				onTick(left)
			}
			if left <= 0 {
				return
			}
		}
	}
}

// Stop прерывает отсчёт и ждёт завершения
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done закрывается по окончании текущего отсчёта
func (c *Countdown) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return c.done
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Remaining - сколько целых секунд паузы осталось после отправки в sentAt.
// Повторная отправка доступна ровно при нуле.
func Remaining(sentAt, now time.Time, period time.Duration) int {
	if sentAt.IsZero() {
		return 0
	}
	left := period - now.Sub(sentAt)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Ready - можно ли повторить отправку
func Ready(sentAt, now time.Time, period time.Duration) bool {
	return Remaining(sentAt, now, period) == 0
}
