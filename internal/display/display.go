// Package display shows the countdown full-screen using Bubble Tea.
//
// The [UI] type is both the drawing sink and the key source of the event
// loop. Bubble Tea owns the terminal from the goroutine that calls
// [UI.Run]; the event loop runs elsewhere, hands over views with
// [UI.Draw] and receives keystrokes through [UI.ReadKey].
package display

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Sink      = (*UI)(nil)
	_ domain.KeySource = (*UI)(nil)
)

// Option configures the UI.
type Option func(*UI)

// WithColor sets the foreground color of the digits and border.
func WithColor(c lipgloss.TerminalColor) Option {
	return func(u *UI) { u.color = c }
}

// WithBorder draws a border around the whole screen.
func WithBorder(on bool) Option {
	return func(u *UI) { u.border = on }
}

// WithProgress shows an elapsed-time bar under the digits.
func WithProgress(on bool) Option {
	return func(u *UI) { u.progress = on }
}

// WithTitle keeps the terminal window title in sync with the clock.
func WithTitle(on bool) Option {
	return func(u *UI) { u.title = on }
}

// WithIO replaces the terminal with the given reader and writer.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(u *UI) {
		u.in = in
		u.out = out
	}
}

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may call
// [UI.Draw] and [UI.ReadKey] once [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	log     *logger.Logger

	color    lipgloss.TerminalColor
	border   bool
	progress bool
	title    bool
	in       io.Reader
	out      io.Writer

	keyCh    chan domain.Key
	readyCh  chan struct{}
	quitCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	done     atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		log:     log,
		color:   mustColor(DefaultColor),
		title:   true,
		keyCh:   make(chan domain.Key, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run starts the Bubble Tea event loop on the alternate screen. Blocks
// until Quit is called or the program fails.
func (u *UI) Run() error {
	m := model{
		keys:    defaultKeyMap(),
		keyCh:   u.keyCh,
		stopCh:  u.stopCh,
		readyCh: u.readyCh,
		theme:   newTheme(u.color, u.border, u.progress),
		title:   u.title,
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if u.in != nil {
		opts = append(opts, tea.WithInput(u.in))
	}
	if u.out != nil {
		opts = append(opts, tea.WithOutput(u.out))
	}

	u.program = tea.NewProgram(m, opts...)
	_, err := u.program.Run()
	u.done.Store(true)
	u.stop()
	close(u.quitCh)
	u.log.Debug("display: bubble tea exited (err=%v)", err)
	return err
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Ready is closed once the Bubble Tea event loop is running.
func (u *UI) Ready() <-chan struct{} { return u.readyCh }

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Quit tells Bubble Tea to exit and restore the terminal.
func (u *UI) Quit() {
	u.stop()
	if u.program != nil {
		u.program.Quit()
	}
}

func (u *UI) stop() {
	u.stopOnce.Do(func() { close(u.stopCh) })
}

// Draw queues v for the Bubble Tea loop. It returns once the program has
// taken the message; painting happens later on the renderer's next frame.
func (u *UI) Draw(ctx context.Context, v domain.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.done.Load() || u.program == nil {
		return domain.ErrDisplayClosed
	}
	u.program.Send(viewMsg(v))
	if u.done.Load() {
		return domain.ErrDisplayClosed
	}
	return nil
}

// ReadKey waits up to timeout for the next keystroke.
func (u *UI) ReadKey(ctx context.Context, timeout time.Duration) (domain.Key, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case k := <-u.keyCh:
		return k, true, nil
	case <-t.C:
		return domain.KeyOther, false, nil
	case <-ctx.Done():
		return domain.KeyOther, false, ctx.Err()
	case <-u.quitCh:
		return domain.KeyOther, false, domain.ErrDisplayClosed
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

type viewMsg domain.View

type model struct {
	keys    keyMap
	keyCh   chan<- domain.Key
	stopCh  <-chan struct{}
	readyCh chan struct{}
	theme   theme
	title   bool

	view    domain.View
	hasView bool
	width   int
	height  int
}

func (m model) Init() tea.Cmd {
	return signalReady(m.readyCh)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := m.keys.decode(msg)
		select {
		case m.keyCh <- k:
		case <-m.stopCh:
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case viewMsg:
		m.view = domain.View(msg)
		m.hasView = true
		if m.title {
			return m, tea.SetWindowTitle(title(m.view))
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if !m.hasView {
		return ""
	}
	return compose(m.view, m.width, m.height, m.theme)
}
