package bulkfm

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xterm "github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// confirmModel is a single-key y/n prompt.
type confirmModel struct {
	prompt string
	answer bool
	done   bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return m.prompt
}

// confirm asks a y/n question: a one-key prompt on a terminal, a
// line-oriented read otherwise. Anything but an affirmative answer is no.
func (a *App) confirm(prompt string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(a.stdout, prompt)
		reader := bufio.NewReader(os.Stdin)
		resp, _ := reader.ReadString('\n')
		resp = strings.TrimSpace(strings.ToLower(resp))
		return resp == "y" || resp == "yes"
	}

	out, err := tea.NewProgram(confirmModel{prompt: prompt}).Run()
	if err != nil {
		return false
	}
	m, ok := out.(confirmModel)
	if ok && m.answer {
		fmt.Fprintln(a.stdout, prompt+"y")
		return true
	}
	fmt.Fprintln(a.stdout, prompt+"n")
	return false
}

// pressAnyKey blocks until a single key arrives, so diagnostics survive
// the next screen refresh. Off a terminal it is a no-op.
func (a *App) pressAnyKey() {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) {
		return
	}
	fmt.Fprint(a.stdout, mutedStyle.Render("Press any key to continue... "))
	st, err := xterm.MakeRaw(fd)
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		_, _ = reader.ReadString('\n')
		return
	}
	defer xterm.Restore(fd, st) //nolint:errcheck
	var buf [1]byte
	_, _ = os.Stdin.Read(buf[:])
	fmt.Fprintln(a.stdout)
}
