package controller

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. The program
// runs on its own goroutine; display methods forward messages to it.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	return t.startWithModel(newSessionModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.options...)
	program := tea.NewProgram(model, options...)
	done := make(chan struct{})

	group := &errgroup.Group{}
	group.Go(func() error {
		defer close(done)

		_, err := program.Run()

		return err
	})

	t.program = program
	t.group = group
	t.done = done
	t.started = true

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	if err := t.Start(); err != nil {
		log.Warn().Err(err).Msg("start tui")
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close quits the program and waits for it to release the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Wait blocks until the user leaves the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	if err := group.Wait(); err != nil {
		log.Debug().Err(err).Msg("tui program finished")
	}
}

// Done is closed once the program has exited.
func (t *TUI) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done
}

// DisplayBuildProgress forwards build progress to the program.
func (t *TUI) DisplayBuildProgress(fraction float64) {
	t.ensureStarted()
	t.send(buildProgressMsg{fraction: fraction})
}

// DisplayPlan forwards the plan or the build error to the program.
func (t *TUI) DisplayPlan(plan m.Plan, err error) error {
	t.ensureStarted()
	t.send(planMsg{plan: plan, err: err, at: time.Now()})

	return err
}

// ReviewPlan lets the user toggle items and confirm. It blocks until the
// user answers or leaves the program.
func (t *TUI) ReviewPlan(plan m.Plan, assumeYes bool) ([]m.PlanItem, error) {
	t.ensureStarted()

	if assumeYes {
		items := plan.Executable()
		if len(items) == 0 {
			t.send(noticeMsg{text: "Nothing selected to rename."})
		}

		return items, nil
	}

	t.mu.Lock()
	running := t.program != nil
	t.mu.Unlock()

	if !running {
		return nil, nil
	}

	reply := make(chan []m.PlanItem, 1)
	t.send(reviewRequestMsg{plan: plan, reply: reply})

	select {
	case items := <-reply:
		return items, nil
	case <-t.Done():
		select {
		case items := <-reply:
			return items, nil
		default:
			return nil, nil
		}
	}
}

// DisplayExecuteProgress forwards execute progress to the program.
func (t *TUI) DisplayExecuteProgress(fraction float64) {
	t.ensureStarted()
	t.send(executeProgressMsg{fraction: fraction})
}

// DisplayResult forwards the execute result to the program.
func (t *TUI) DisplayResult(result m.Result) {
	t.ensureStarted()
	t.send(resultMsg{result: result})
}

// DisplayReports forwards stored reports to the program.
func (t *TUI) DisplayReports(reports []m.Report, err error) error {
	t.ensureStarted()
	t.send(reportsMsg{reports: reports, err: err})

	return err
}
