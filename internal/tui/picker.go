// Package tui implements the interactive folder picker using Bubble Tea.
// The picker browses directories only and returns the absolute path the user
// chose. Without a terminal it falls back to reading a path from the input.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/litescript/ls-file-organizer/internal/config"
	"github.com/litescript/ls-file-organizer/internal/organizer"
	"github.com/litescript/ls-file-organizer/internal/theme"
)

// Options configures SelectFolder
type Options struct {
	Title      string
	StartDir   string // Empty means the working directory
	ShowHidden bool
	Input      io.Reader // Defaults to os.Stdin
	Output     io.Writer // Defaults to os.Stderr
}

type keyMap struct {
	Choose  key.Binding
	Current key.Binding
	Back    key.Binding
	Cancel  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Current, k.Back, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose folder")),
	Current: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "choose current")),
	Back:    key.NewBinding(key.WithKeys("h", "backspace"), key.WithHelp("h", "parent")),
	Cancel:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// pickerModel is the Bubble Tea model of the folder picker
type pickerModel struct {
	fp        filepicker.Model
	help      help.Model
	styles    theme.Styles
	title     string
	selected  string
	cancelled bool
}

func newPickerModel(opts Options, styles theme.Styles) pickerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = opts.StartDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = opts.ShowHidden
	fp.ShowPermissions = false
	fp.ShowSize = false
	fp.Styles.Cursor = styles.Cursor
	fp.Styles.Directory = styles.Directory
	fp.Styles.Symlink = styles.Directory
	fp.Styles.File = styles.Muted
	fp.Styles.DisabledFile = styles.Disabled
	fp.Styles.Selected = styles.Selected
	fp.Styles.DisabledSelected = styles.Disabled
	fp.Styles.EmptyDirectory = styles.Muted.SetString("(no entries)")

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc

	title := opts.Title
	if title == "" {
		title = "Select a folder"
	}

	return pickerModel{fp: fp, help: h, styles: styles, title: title}
}

func (m pickerModel) Init() tea.Cmd {
	return m.fp.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Current):
			m.selected = m.fp.CurrentDirectory
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	// The filepicker records Path only when an allowed entry, here a
	// directory, is chosen with enter.
	if m.fp.Path != "" {
		m.selected = m.fp.Path
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickerModel) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.title),
		m.styles.Path.Render(m.fp.CurrentDirectory),
		"",
		m.fp.View(),
		m.help.View(keys),
	)
}

// SelectFolder lets the user choose a directory and returns its absolute
// path. It blocks until a folder is chosen or the prompt is cancelled.
//
// Errors are *organizer.OpError values of kind ErrUserCancelled,
// ErrInvalidPath or ErrTaskFailed.
func SelectFolder(ctx context.Context, opts Options) (string, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.StartDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", organizer.TaskError(err)
		}
		opts.StartDir = wd
	}
	opts.StartDir = config.ExpandPath(opts.StartDir)

	if !interactive(opts.Input, opts.Output) {
		answer, err := promptLine(opts)
		if err != nil {
			return "", organizer.TaskError(err)
		}
		return finish(answer)
	}

	type outcome struct {
		model tea.Model
		err   error
	}
	done := make(chan outcome, 1)

	_, styles := theme.Load()
	go func() {
		p := tea.NewProgram(newPickerModel(opts, styles),
			tea.WithContext(ctx),
			tea.WithInput(opts.Input),
			tea.WithOutput(opts.Output),
			tea.WithAltScreen(),
		)
		final, err := p.Run()
		done <- outcome{model: final, err: err}
	}()

	res := <-done
	if res.err != nil {
		if errors.Is(res.err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", organizer.TaskError(ctx.Err())
		}
		return "", organizer.TaskError(res.err)
	}
	m, ok := res.model.(pickerModel)
	if !ok {
		return "", organizer.TaskError(fmt.Errorf("unexpected picker model %T", res.model))
	}
	if m.cancelled {
		return "", organizer.CancelledError()
	}
	return finish(m.selected)
}

// promptLine asks for a folder path on a plain stream. An empty answer or
// end of input means no folder was chosen.
func promptLine(opts Options) (string, error) {
	fmt.Fprintf(opts.Output, "%s [%s]: ", opts.Title, opts.StartDir)

	line, err := bufio.NewReader(opts.Input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	line = config.ExpandPath(line)
	if !filepath.IsAbs(line) {
		line = filepath.Join(opts.StartDir, line)
	}
	return line, nil
}

// finish turns the raw choice into the picker result
func finish(path string) (string, error) {
	if path == "" {
		return "", organizer.CancelledError()
	}
	if !utf8.ValidString(path) {
		return "", organizer.InvalidPathError(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", organizer.InvalidPathError(path)
	}
	return abs, nil
}

func interactive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(inFile.Fd()) && isTerminal(outFile.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
