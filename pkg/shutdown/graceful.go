// Package shutdown предоставляет корректное завершение приложения
// по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"noteboard/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogSignalReceived  = "shutdown signal received"
	LogHookFailed      = "shutdown hook failed"
	LogShutdownTimeout = "shutdown timeout exceeded"
)

// Hook - функция, вызываемая при завершении.
type Hook func(context.Context) error

// Stage - группа хуков, выполняемых параллельно.
type Stage []Hook

// Wait блокируется до получения SIGINT/SIGTERM или отмены ctx,
// затем параллельно выполняет хуки в пределах timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	WaitStages(ctx, timeout, hooks)
}

// WaitStages ждет сигнала так же, как Wait, и выполняет этапы по очереди.
func WaitStages(ctx context.Context, timeout time.Duration, stages ...Stage) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log := logger.Log(ctx)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	RunStages(ctx, timeout, stages...)
}

// Run выполняет хуки параллельно и ждет их завершения не дольше timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	RunStages(ctx, timeout, hooks)
}

// RunStages выполняет этапы последовательно, хуки внутри этапа - параллельно.
// Следующий этап начинается только после завершения всех хуков предыдущего.
// timeout общий для всех этапов. После его истечения оставшиеся этапы пропускаются.
func RunStages(ctx context.Context, timeout time.Duration, stages ...Stage) {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	for _, stage := range stages {
		if !runStage(hookCtx, log, stage) {
			log.Warn(ctx, LogShutdownTimeout, zap.Duration("timeout", timeout))
			return
		}
	}
}

func runStage(ctx context.Context, log *logger.Logger, stage Stage) bool {
	var wg sync.WaitGroup
	for _, hook := range stage {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				log.Error(ctx, LogHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
