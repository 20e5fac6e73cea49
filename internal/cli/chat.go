package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grivetoutdoors/salestrainer/internal/customer"
	"github.com/grivetoutdoors/salestrainer/internal/persona"
	"github.com/grivetoutdoors/salestrainer/internal/scoring"
	"github.com/grivetoutdoors/salestrainer/internal/session"
	"github.com/grivetoutdoors/salestrainer/internal/store"
)

// chatState tracks which phase the TUI is in.
type chatState int

const (
	stateName chatState = iota
	stateChat
	stateWaiting
	stateScored
)

const replyTimeout = 90 * time.Second

// style constants
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			MarginBottom(1)

	headerBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#04B575")).
			MarginBottom(1)

	personaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)

	employeeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	customerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

type chatOptions struct {
	EmployeeName string
	Persona      persona.Persona
	Model        string
	Store        store.Store
	Archive      *store.Archive
	Logger       *slog.Logger
}

type customerReplyMsg struct {
	text string
	err  error
}

type persistDoneMsg struct {
	storeErr   error
	archiveErr error
}

// chatModel is the Bubble Tea model for a training session.
type chatModel struct {
	ctx  context.Context
	opts chatOptions

	sess *session.Session
	sim  customer.Simulator

	state       chatState
	input       string
	width       int
	notice      string
	persistNote string
	report      *session.Report
}

func newChatModel(ctx context.Context, opts chatOptions) chatModel {
	m := chatModel{ctx: ctx, opts: opts, state: stateName}
	if opts.EmployeeName != "" {
		m.startSession(opts.EmployeeName)
	}
	return m
}

// startSession creates the session context and the persona simulator once
// the employee name is known.
func (m *chatModel) startSession(name string) {
	m.sess = session.New(name, m.opts.Persona)
	m.sim = customer.NewClaudeSimulator(m.opts.Model, m.opts.Persona, name)
	m.sess.Append(session.RoleAssistant, fmt.Sprintf(
		"Welcome %s! The role play begins as you notice a customer entering the store. "+
			"I’ll act as the customer — go ahead and greet me when you’re ready. Type /score any time to end the session.",
		name))
	m.state = stateChat
}

func (m chatModel) Init() tea.Cmd {
	return nil
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case customerReplyMsg:
		if msg.err != nil {
			// Model failures are visible but never fatal: the transcript
			// accumulated so far stays intact and scorable.
			m.notice = "Customer model error: " + msg.err.Error()
			m.opts.Logger.Warn("customer reply failed", "error", msg.err)
			m.state = stateChat
			return m, nil
		}
		m.notice = ""
		m.sess.Append(session.RoleAssistant, msg.text)
		m.state = stateChat
		return m, nil

	case persistDoneMsg:
		switch {
		case msg.storeErr != nil:
			m.persistNote = warnStyle.Render("Score could not be submitted: " + msg.storeErr.Error())
			m.opts.Logger.Warn("score submission failed", "error", msg.storeErr)
		case msg.archiveErr != nil:
			m.persistNote = warnStyle.Render("Score submitted; transcript archive failed: " + msg.archiveErr.Error())
			m.opts.Logger.Warn("transcript archive failed", "error", msg.archiveErr)
		default:
			m.persistNote = scoreStyle.Render("Score submitted to the leaderboard.")
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateName:
			return m.updateName(msg)
		case stateChat:
			return m.updateChat(msg)
		case stateWaiting:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case stateScored:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

func (m chatModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.input)
		if name == "" {
			m.notice = "A name is required to begin training."
			return m, nil
		}
		m.input = ""
		m.notice = ""
		m.startSession(name)
		return m, nil
	default:
		m.input = editLine(m.input, msg)
		return m, nil
	}
}

func (m chatModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		text := strings.TrimSpace(m.input)
		if text == "" {
			return m, nil
		}
		m.input = ""
		m.notice = ""
		m.sess.Append(session.RoleUser, text)

		if session.ScoreRequested(text) {
			rep := m.sess.Finalize(time.Now())
			m.report = &rep
			m.state = stateScored
			return m, m.persistCmd(rep)
		}

		m.state = stateWaiting
		return m, m.replyCmd()
	default:
		m.input = editLine(m.input, msg)
		return m, nil
	}
}

// editLine applies a key to a single-line text input.
func editLine(line string, msg tea.KeyMsg) string {
	switch msg.String() {
	case "backspace":
		if len(line) > 0 {
			runes := []rune(line)
			return string(runes[:len(runes)-1])
		}
		return line
	case "ctrl+u":
		return ""
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		if msg.Type == tea.KeySpace {
			return line + " "
		}
		return line + string(msg.Runes)
	}
	return line
}

// replyCmd asks the simulator for the customer's next message off the UI
// loop.
func (m chatModel) replyCmd() tea.Cmd {
	sim := m.sim
	turns := m.sess.Turns()
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, replyTimeout)
		defer cancel()
		text, err := sim.Reply(ctx, turns)
		return customerReplyMsg{text: text, err: session.NewSessionError(session.StageReply, err)}
	}
}

// persistCmd submits the finished report and archives the transcript. The
// report on screen is already final — persistence only decides whether it is
// durably recorded.
func (m chatModel) persistCmd(rep session.Report) tea.Cmd {
	st := m.opts.Store
	archive := m.opts.Archive
	transcript := m.sess.CombinedTranscript()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var out persistDoneMsg
		out.storeErr = session.NewSessionError(session.StageStore, st.AddReport(ctx, rep))
		if archive != nil {
			_, err := archive.Save(ctx, rep.SessionID, transcript)
			out.archiveErr = session.NewSessionError(session.StageArchive, err)
		}
		return out
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	title := titleStyle.Render("Grivet Retail Sales Trainer")
	b.WriteString(headerBorder.Render(title))
	b.WriteString("\n")

	switch m.state {
	case stateName:
		b.WriteString("Enter your name to begin training:\n\n")
		b.WriteString("> " + inputStyle.Render(m.input+"_") + "\n")
		b.WriteString(helpStyle.Render("  The trainer is an interactive role-play that teaches Grivet store teams to\n  uncover customer needs, close confidently, drive add-on sales, and build loyalty."))
	case stateChat, stateWaiting:
		b.WriteString(personaStyle.Render("Persona: "+m.sess.Persona.Label) + "\n\n")
		m.renderTranscript(&b)
		if m.state == stateWaiting {
			b.WriteString(waitingStyle.Render("  customer is responding...") + "\n")
		}
		if m.notice != "" {
			b.WriteString(errorStyle.Render("  "+m.notice) + "\n")
		}
		if m.state == stateChat {
			b.WriteString("\n> " + inputStyle.Render(m.input+"_") + "\n")
			b.WriteString(helpStyle.Render("  enter to send | /score to end and get scored | esc to quit"))
		}
	case stateScored:
		m.renderReport(&b)
	}

	b.WriteString("\n")
	return b.String()
}

func (m chatModel) renderTranscript(b *strings.Builder) {
	wrap := lipgloss.NewStyle().PaddingLeft(2)
	if m.width > 8 {
		wrap = wrap.Width(m.width - 4)
	}
	for _, t := range m.sess.Turns() {
		switch t.Role {
		case session.RoleUser:
			b.WriteString(employeeStyle.Render("You") + "\n")
		case session.RoleAssistant:
			b.WriteString(customerStyle.Render("Customer") + "\n")
		default:
			continue
		}
		b.WriteString(wrap.Render(t.Content) + "\n\n")
	}
}

func (m chatModel) renderReport(b *strings.Builder) {
	rep := m.report

	b.WriteString(scoreStyle.Render("Session Summary") + "\n\n")
	b.WriteString(fmt.Sprintf("  Employee:  %s\n", rep.EmployeeName))
	b.WriteString(fmt.Sprintf("  Persona:   %s\n", rep.Persona))
	if name := m.sess.CustomerName(); name != "" {
		b.WriteString(fmt.Sprintf("  Customer:  %s\n", name))
	}
	b.WriteString("\n")

	for _, p := range scoring.Pillars {
		score := rep.Scores[p]
		bar := strings.Repeat("█", score) + strings.Repeat("░", 10-score)
		b.WriteString(fmt.Sprintf("  %-13s %s %2d/10\n", p, bar, score))
	}

	b.WriteString("\n" + scoreStyle.Render(fmt.Sprintf("  Total: %d / 100", rep.Total)) + "\n")
	b.WriteString("\n" + bodyStyle.Render(wrapText(rep.Notes, m.width-6)) + "\n")
	if m.persistNote != "" {
		b.WriteString("\n  " + m.persistNote + "\n")
	}
	b.WriteString(helpStyle.Render("  q to exit"))
}

func wrapText(s string, width int) string {
	if width < 20 {
		width = 72
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// runChat drives the session TUI and prints the final report to the normal
// screen afterwards so it survives leaving the alt screen.
func runChat(ctx context.Context, opts chatOptions) error {
	p := tea.NewProgram(newChatModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("chat error: %w", err)
	}

	final := result.(chatModel)
	if final.report != nil {
		printFinalReport(final.report)
	}
	return nil
}

func printFinalReport(rep *session.Report) {
	fmt.Printf("\nSession Summary — %s (%s)\n", rep.EmployeeName, rep.Persona)
	for _, p := range scoring.Pillars {
		fmt.Printf("  %-13s %2d/10\n", p, rep.Scores[p])
	}
	fmt.Printf("  Total: %d / 100\n\n%s\n", rep.Total, rep.Notes)
}
