package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a status line while the render command works through its
// output formats. The message can change between formats.
type spinner struct {
	w io.Writer

	mu    sync.Mutex
	msg   string
	width int // widest line drawn, cleared on halt

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// startSpinner draws msg on w until halt is called or ctx is done.
func startSpinner(ctx context.Context, w io.Writer, msg string) *spinner {
	s := &spinner{
		w:    w,
		msg:  msg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	s.draw(0)
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 1; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.draw(i)
		}
	}
}

// update replaces the message from the next frame on.
func (s *spinner) update(format string, args ...any) {
	s.mu.Lock()
	s.msg = fmt.Sprintf(format, args...)
	s.mu.Unlock()
}

func (s *spinner) draw(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := spinnerFrames[i%len(spinnerFrames)]
	s.width = max(s.width, lipgloss.Width(frame+" "+s.msg))
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.msg))
}

// halt stops the animation and clears the line. Repeated calls are no-ops.
func (s *spinner) halt() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
		s.mu.Lock()
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.mu.Unlock()
	})
}

func (s *spinner) succeed(format string, args ...any) {
	s.halt()
	printSuccess(format, args...)
}

func (s *spinner) fail(format string, args ...any) {
	s.halt()
	printError(format, args...)
}
