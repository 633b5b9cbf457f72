package detail

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerClosedMsg is sent when the pager exits.
type PagerClosedMsg struct {
	Err error
}

// PagerCommand shows text in the ov pager. It implements tea.ExecCommand so
// Bubble Tea releases the terminal while ov runs.
type PagerCommand struct {
	Content string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ tea.ExecCommand = (*PagerCommand)(nil)

// NewPagerCommand returns a command paging content.
func NewPagerCommand(content string) *PagerCommand {
	return &PagerCommand{Content: content}
}

// Run opens the pager and blocks until the user quits it.
func (c *PagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.Content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// SetStdin implements tea.ExecCommand. ov reads the terminal directly.
func (c *PagerCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout implements tea.ExecCommand.
func (c *PagerCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr implements tea.ExecCommand.
func (c *PagerCommand) SetStderr(w io.Writer) { c.stderr = w }

// OpenPager returns a command that pages d and reports back with
// PagerClosedMsg.
func OpenPager(content string) tea.Cmd {
	return tea.Exec(NewPagerCommand(content), func(err error) tea.Msg {
		return PagerClosedMsg{Err: err}
	})
}
