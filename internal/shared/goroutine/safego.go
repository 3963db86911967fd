// Package goroutine runs background tasks that must not take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/avestaexchange/avesta/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with its stack
// under the task name and swallowed.
//
// Example:
//
//	goroutine.SafeGo(log, "rate-warmup", func() {
//	    _, _ = engine.FetchLatestRates(ctx)
//	})
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverTask(log, name)
		fn()
	}()
}

// recoverTask must be deferred directly so recover sees the panic.
func recoverTask(log logger.Interface, name string) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("background task panicked",
		"task", name,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}
