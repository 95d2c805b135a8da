package pretty

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sbomweld/sbomweld/common"
)

const logTailSize = 5

type progressMsg struct {
	completed int
	total     int
	message   string
}

type logLineMsg string

type finishMsg struct {
	success bool
}

// teaProgress runs the bubbletea dashboard in its own goroutine and feeds it
// messages from the job pool. While it owns the terminal, normal log output
// is intercepted into the dashboard tail.
type teaProgress struct {
	program *tea.Program
	done    chan struct{}
}

func newTeaProgress(total int) *teaProgress {
	model := dashboardModel{
		total:   total,
		bar:     progress.New(progress.WithDefaultGradient()),
		started: time.Now(),
	}
	return &teaProgress{
		program: tea.NewProgram(model, tea.WithOutput(os.Stderr)),
		done:    make(chan struct{}),
	}
}

func (it *teaProgress) Start() {
	go func() {
		defer close(it.done)
		if _, err := it.program.Run(); err != nil {
			common.Debug("Progress dashboard stopped: %v", err)
		}
	}()
	common.SetLogInterceptor(func(message string) bool {
		it.program.Send(logLineMsg(message))
		return true
	})
}

func (it *teaProgress) Update(completed, total int, message string) {
	it.program.Send(progressMsg{completed, total, message})
}

func (it *teaProgress) Stop(success bool) {
	common.ClearLogInterceptor()
	it.program.Send(finishMsg{success})
	<-it.done
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tailStyle    = lipgloss.NewStyle().Faint(true)
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
)

type dashboardModel struct {
	total     int
	completed int
	message   string
	tail      []string
	bar       progress.Model
	started   time.Time
	finished  bool
	success   bool
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 10 {
			m.bar.Width = width
		}
		return m, nil
	case progressMsg:
		m.completed = msg.completed
		m.total = msg.total
		m.message = msg.message
		percent := 0.0
		if m.total > 0 {
			percent = float64(m.completed) / float64(m.total)
		}
		return m, m.bar.SetPercent(percent)
	case logLineMsg:
		m.tail = append(m.tail, string(msg))
		if len(m.tail) > logTailSize {
			m.tail = m.tail[len(m.tail)-logTailSize:]
		}
		return m, nil
	case finishMsg:
		m.finished = true
		m.success = msg.success
		return m, tea.Quit
	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		m.bar = updated.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Quit the dashboard and forward the interrupt so that in-flight
			// sandbox cleanup still runs.
			if self, err := os.FindProcess(os.Getpid()); err == nil {
				self.Signal(os.Interrupt)
			}
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) View() string {
	percent := 0
	if m.total > 0 {
		percent = m.completed * 100 / m.total
	}
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s %s", common.ProductName, common.Version)),
		m.bar.View(),
		counterStyle.Render(fmt.Sprintf("Processing packages: %d/%d (%d%%) elapsed %s",
			m.completed, m.total, percent, common.Duration(time.Since(m.started)))),
	}
	if len(m.message) > 0 {
		lines = append(lines, counterStyle.Render(m.message))
	}
	for _, entry := range m.tail {
		lines = append(lines, tailStyle.Render(entry))
	}
	if m.finished {
		if m.success {
			lines = append(lines, okStyle.Render("OK."))
		} else {
			lines = append(lines, failStyle.Render("Completed with failures, see the log above."))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
