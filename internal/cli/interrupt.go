package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// InterruptHandler prints a friendly message when a long-running command is
// cut short. The root context is cancelled by the signal handler in main;
// the handler only watches it.
type InterruptHandler struct {
	writer      io.Writer
	done        chan struct{}
	resumeHint  string
	interrupted bool
	stopOnce    sync.Once
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer: writer,
		done:   make(chan struct{}),
	}
}

// Watch reports an interruption once ctx is cancelled before Stop is called.
// A non-empty resumeHint is printed as the command that picks up the work.
func (h *InterruptHandler) Watch(ctx context.Context, resumeHint string) {
	h.resumeHint = resumeHint

	go func() {
		select {
		case <-h.done:
		case <-ctx.Done():
			h.mu.Lock()
			if !h.interrupted {
				h.interrupted = true
				h.showInterruptMessage()
			}
			h.mu.Unlock()
		}
	}()
}

// Stop ends the watch without reporting anything.
func (h *InterruptHandler) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n\n" + FormatWarning("Interrupted!")

	if h.resumeHint != "" {
		msg += "\n" + FormatInfo("Work saved so far is kept. Resume with: "+h.resumeHint)
	}

	msg += "\n" + FormatInfo("Cheers! "+BottleIcon) + "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
