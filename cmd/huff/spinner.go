package main

import (
	"context"
	"fmt"
	"io"
	"time"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 200 * time.Millisecond

// clearLine erases the current terminal line and returns the cursor to
// column 0.
const clearLine = "\x1b[2K\r"

// spinner animates a progress message on its own goroutine until Stop is
// called.  It only ever writes to w.
type spinner struct {
	w      io.Writer
	msg    string
	result chan string
	done   chan struct{}
}

func startSpinner(ctx context.Context, w io.Writer, msg string, interval time.Duration) *spinner {
	s := &spinner{
		w:      w,
		msg:    msg,
		result: make(chan string, 1),
		done:   make(chan struct{}),
	}
	go s.run(ctx, interval)
	return s
}

func (s *spinner) run(ctx context.Context, interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frame := 0; ; frame = (frame + 1) % len(spinnerFrames) {
		fmt.Fprintf(s.w, "%s%s %s", clearLine, spinnerFrames[frame], s.msg)
		select {
		case final := <-s.result:
			fmt.Fprintf(s.w, "%s%s\n", clearLine, final)
			return
		case <-ctx.Done():
			fmt.Fprint(s.w, clearLine)
			return
		case <-ticker.C:
		}
	}
}

// Stop replaces the animation with the final message and waits for the
// goroutine to exit.  Stop must be called exactly once.
func (s *spinner) Stop(final string) {
	s.result <- final
	<-s.done
}
