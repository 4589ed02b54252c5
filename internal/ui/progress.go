package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const barWidth = 40

// NewProgress returns a Progress that draws an animated bar on a color
// terminal and falls back to "[n/N] step" lines everywhere else.
// Output goes to w, or os.Stdout when w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stdout
	}
	return &stepProgress{theme: theme, headless: hm, out: w}
}

type stepProgress struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

func (p *stepProgress) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor || !IsTerminal(p.out) {
		return newLineBar(title, total, p.out)
	}
	return newAnimatedBar(p.theme, title, total, p.out)
}

// Messages understood by stepModel.
type (
	stepAdvanced  int
	stepRenamed   string
	stepsFinished struct{}
)

// stepModel draws one bar for a run of generator steps.
type stepModel struct {
	bar      progress.Model
	step     string
	finished int
	steps    int
	closed   bool
}

func newStepModel(theme *Theme, step string, steps int) stepModel {
	opts := []progress.Option{progress.WithWidth(barWidth)}
	if theme.NoColor {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary))
	}
	return stepModel{bar: progress.New(opts...), step: step, steps: steps}
}

func (m stepModel) Init() tea.Cmd { return nil }

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepAdvanced:
		m.finished = clamp(m.finished+int(msg), m.steps)
	case stepRenamed:
		m.step = string(msg)
	case stepsFinished:
		m.finished, m.closed = m.steps, true
		return m, tea.Quit
	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.closed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m stepModel) View() string {
	if m.closed {
		return ""
	}
	var ratio float64
	if m.steps > 0 {
		ratio = float64(m.finished) / float64(m.steps)
	}
	return fmt.Sprintf("%s [%d/%d] %s\n", m.bar.ViewAs(ratio), m.finished, m.steps, m.step)
}

// animatedBar runs a stepModel in its own tea.Program. The program never
// reads stdin and leaves SIGINT to the caller's context, so an interrupt
// stops generation instead of only the bar.
type animatedBar struct {
	program *tea.Program
	exited  chan struct{}
	stop    sync.Once
}

func newAnimatedBar(theme *Theme, title string, total int, w io.Writer) *animatedBar {
	program := tea.NewProgram(newStepModel(theme, title, total),
		tea.WithInput(nil),
		tea.WithOutput(w),
		tea.WithoutSignalHandler(),
	)
	return runAnimatedBar(program)
}

func runAnimatedBar(program *tea.Program) *animatedBar {
	b := &animatedBar{program: program, exited: make(chan struct{})}
	go func() {
		defer close(b.exited)
		_, _ = program.Run()
	}()
	return b
}

func (b *animatedBar) Increment(n int)       { b.program.Send(stepAdvanced(n)) }
func (b *animatedBar) SetTitle(title string) { b.program.Send(stepRenamed(title)) }

// Done fills the bar and blocks until its program has exited.
func (b *animatedBar) Done() {
	b.stop.Do(func() {
		b.program.Send(stepsFinished{})
		<-b.exited
	})
}

// lineBar prints one "[n/N] step" line per increment.
type lineBar struct {
	mu       sync.Mutex
	out      io.Writer
	step     string
	finished int
	steps    int
	closed   bool
}

func newLineBar(step string, steps int, w io.Writer) *lineBar {
	return &lineBar{out: w, step: step, steps: steps}
}

func (b *lineBar) Increment(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finished = clamp(b.finished+n, b.steps)
	b.printLocked()
}

func (b *lineBar) SetTitle(title string) {
	b.mu.Lock()
	b.step = title
	b.mu.Unlock()
}

// Done prints a final line only when the last increment did not already
// reach the total. Later calls are no-ops.
func (b *lineBar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	if b.finished < b.steps {
		b.finished = b.steps
		b.printLocked()
	}
}

func (b *lineBar) printLocked() {
	_, _ = fmt.Fprintf(b.out, "[%d/%d] %s\n", b.finished, b.steps, b.step)
}

func clamp(n, limit int) int {
	return max(0, min(n, limit))
}
