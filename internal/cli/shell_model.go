package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhitman/draftboard/internal/cli/formatter"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeConfirm                  // Awaiting y/n for destructive command.
)

// pendingConfirmation holds a destructive command awaiting a y/n answer.
type pendingConfirmation struct {
	description string
	args        []string
}

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	input textinput.Model
	width int

	app             *App
	activeBoardID   string
	activeShortID   string
	activeBoardName string

	mode           shellMode
	pendingConfirm *pendingConfirmation

	history    []string
	historyIdx int

	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Use Tab for suggestion acceptance, reserve Up/Down for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadShellHistory()

	return shellModel{
		input:      ti,
		app:        app,
		history:    hist,
		historyIdx: len(hist),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		return m, nil

	case tea.KeyMsg:
		// Global quit.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		if m.mode == modeConfirm {
			return m.updateConfirm(msg)
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Good luck out there.") + "\n"
	}
	return m.promptPrefix() + m.input.View()
}

// ── prompt prefix ────────────────────────────────────────────────────────────

func (m *shellModel) promptPrefix() string {
	if m.mode == modeConfirm {
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	}
	if m.activeBoardID == "" {
		return formatter.StylePurple.Render("draftboard") + " " + formatter.Dim("❯") + " "
	}
	return formatter.StylePurple.Render("draftboard") + " " +
		formatter.Dim("(") + formatter.StyleGreen.Render(m.activeShortID) + formatter.Dim(")") +
		" " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		pending := m.pendingConfirm
		m.pendingConfirm = nil
		m.mode = modePrompt

		switch strings.ToLower(input) {
		case "y", "yes":
			output := m.execCobraCapture(pending.args)
			return m, tea.Println(output)
		default:
			return m, tea.Println(formatter.Dim("Cancelled."))
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendShellHistory(line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		m.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	// First word — suggest commands.
	if len(parts) <= 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}

	cmd := strings.ToLower(parts[0])

	// Second word — suggest subcommands or special args.
	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}

		switch cmd {
		case "use":
			m.input.SetSuggestions(m.boardSuggestions(prefix))
			return
		case "matrix":
			m.input.SetSuggestions(filterSuggestions(positionNames(), prefix))
			return
		}

		if subs, ok := subcommandNames()[cmd]; ok {
			m.input.SetSuggestions(filterSuggestions(subs, prefix))
			return
		}
	}

	// slip set POS / slip limit POS — suggest positions as the third word.
	if cmd == "slip" && len(parts) >= 2 && len(parts) <= 3 {
		prefix := ""
		if len(parts) == 3 {
			prefix = parts[2]
		}
		sub := strings.ToLower(parts[1])
		if sub == "set" || sub == "limit" {
			m.input.SetSuggestions(filterSuggestions(positionNames(), prefix))
			return
		}
	}

	m.input.SetSuggestions(nil)
}

// boardSuggestions returns board ShortIDs matching a prefix.
func (m *shellModel) boardSuggestions(prefix string) []string {
	boards, err := m.app.Boards.List(context.Background(), false)
	if err != nil {
		return nil
	}
	var suggestions []string
	for _, b := range boards {
		id := b.DisplayID()
		if prefix == "" || strings.HasPrefix(strings.ToLower(id), strings.ToLower(prefix)) {
			suggestions = append(suggestions, id)
		}
	}
	return suggestions
}

func positionNames() []string {
	return []string{"QB", "RB", "WR", "TE", "K", "DST"}
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"boards", "use", "summary",
		"matrix", "advise", "take", "mark", "undo", "picks",
		"slip", "board", "player",
		"clear", "help", "exit", "quit",
	}
}

// subcommandNames returns subcommand lists by parent command.
func subcommandNames() map[string][]string {
	return map[string][]string{
		"board":  {"add", "list", "archive", "unarchive", "remove", "import"},
		"player": {"add", "list", "search", "remove", "import"},
		"slip":   {"list", "set", "limit"},
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

// destructiveCommands lists subcommands that require confirmation in the shell.
var destructiveCommands = map[string]map[string]bool{
	"board":  {"remove": true},
	"player": {"remove": true, "import": true},
}

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "boards":
		return m.execBoards(), nil
	case "use":
		return m.execUse(args), nil
	case "clear":
		return "", tea.ClearScreen
	case "help":
		return formatter.FormatShellHelp(), nil
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	case "board", "player":
		return m.execMaybeDestructive(parts), nil
	default:
		return m.execCobraCapture(parts), nil
	}
}

func (m *shellModel) execBoards() string {
	boards, err := m.app.Boards.List(context.Background(), false)
	if err != nil {
		return shellError(err)
	}
	if len(boards) == 0 {
		return formatter.Dim("No boards found.")
	}
	return formatter.FormatBoardList(boards)
}

func (m *shellModel) execUse(args []string) string {
	if len(args) == 0 {
		m.activeBoardID = ""
		m.activeShortID = ""
		m.activeBoardName = ""
		return formatter.Dim("Cleared active board.")
	}

	b, err := m.app.Boards.Resolve(context.Background(), args[0])
	if err != nil {
		return shellError(err)
	}

	m.activeBoardID = b.ID
	m.activeShortID = b.DisplayID()
	m.activeBoardName = b.Name

	return fmt.Sprintf("Active board: %s %s",
		formatter.Bold(b.Name),
		formatter.Dim(m.activeShortID))
}

// ── cobra pass-through ───────────────────────────────────────────────────────

// execCobraCapture runs a command through the Cobra tree and captures output.
func (m *shellModel) execCobraCapture(args []string) string {
	return captureCobraOutput(m.app, m.withActiveBoard(args), m.activeBoardID != "")
}

// withActiveBoard appends --board for the active board unless the command
// already names one.
func (m *shellModel) withActiveBoard(args []string) []string {
	if m.activeBoardID == "" || len(args) == 0 {
		return args
	}
	for _, a := range args {
		if a == "--board" || strings.HasPrefix(a, "--board=") {
			return args
		}
	}

	// Only board-scoped commands get the flag.
	switch strings.ToLower(args[0]) {
	case "take", "mark", "undo", "picks", "matrix", "advise", "summary", "slip":
	case "player":
	default:
		return args
	}

	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	out = append(out, "--board", m.activeBoardID)
	return out
}

// ── destructive commands ─────────────────────────────────────────────────────

func (m *shellModel) execMaybeDestructive(parts []string) string {
	if len(parts) < 2 {
		return m.execCobraCapture(parts)
	}

	group := strings.ToLower(parts[0])
	sub := strings.ToLower(parts[1])

	subs, ok := destructiveCommands[group]
	if !ok || !subs[sub] {
		return m.execCobraCapture(parts)
	}

	for _, a := range parts[2:] {
		if a == "--yes" || a == "-y" || a == "--force" {
			return m.execCobraCapture(parts)
		}
	}

	target := ""
	if len(parts) > 2 {
		target = parts[2]
	}
	desc := fmt.Sprintf("%s %s", group, sub)
	if target != "" {
		desc += " " + target
	}

	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{
		description: desc,
		args:        parts,
	}

	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		desc+"?",
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}
