package handlers

import (
	"fmt"
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/cooldown"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
)

// CooldownHandler - поток SSE с остатком паузы до повторной отправки PIN-кода.
// Поток закрывается на нуле или при отключении клиента.
func CooldownHandler(newCountdown func() *cooldown.Countdown) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(remaining int) {
			fmt.Fprintf(w, "data: %d\n\n", remaining)
			flusher.Flush()
		}

		remaining := cooldown.Remaining(store.PinSentAt(), timeNow(), services.PinResendCooldown)
		send(remaining)
		if remaining == 0 {
			return
		}

		ctx := r.Context()
		ticks := make(chan int)
		countdown := newCountdown()
		countdown.Start(ctx, remaining, func(left int) {
			select {
			case ticks <- left:
			case <-ctx.Done():
			}
		})
		defer countdown.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case left := <-ticks:
				send(left)
				if left == 0 {
					return
				}
			}
		}
	})
}
