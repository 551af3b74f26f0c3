package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-file-organizer/internal/organizer"
	"github.com/litescript/ls-file-organizer/internal/theme"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel(dir string) pickerModel {
	return newPickerModel(Options{StartDir: dir}, theme.NewStyles(theme.DefaultPalette()))
}

func TestPickerModel_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		updated, cmd := testModel(t.TempDir()).Update(msg)
		m := updated.(pickerModel)

		assert.True(t, m.cancelled, msg.String())
		assert.Empty(t, m.selected)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, m.View())
	}
}

func TestPickerModel_ChooseCurrentDirectory(t *testing.T) {
	dir := t.TempDir()

	updated, cmd := testModel(dir).Update(runeKey('s'))
	m := updated.(pickerModel)

	assert.Equal(t, dir, m.selected)
	assert.False(t, m.cancelled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPickerModel_EnterChoosesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alpha"), 0o755))

	var model tea.Model = testModel(dir)
	// Load the directory listing first.
	model, _ = model.Update(model.Init()())

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := model.(pickerModel)

	assert.Equal(t, filepath.Join(dir, "alpha"), m.selected)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPickerModel_View(t *testing.T) {
	dir := t.TempDir()
	m := testModel(dir)

	view := m.View()
	assert.Contains(t, view, "Select a folder")
	assert.Contains(t, view, dir)
	assert.Contains(t, view, "choose current")
}

func TestSelectFolder_PlainInput(t *testing.T) {
	start := t.TempDir()

	tests := []struct {
		name  string
		input string
		want  string
		kind  error
	}{
		{name: "absolute", input: "/srv/data\n", want: "/srv/data"},
		{name: "relative to start", input: "docs\n", want: filepath.Join(start, "docs")},
		{name: "no trailing newline", input: "/srv/x", want: "/srv/x"},
		{name: "empty line", input: "\n", kind: organizer.ErrUserCancelled},
		{name: "end of input", input: "", kind: organizer.ErrUserCancelled},
		{name: "not text", input: "/srv/\xff\n", kind: organizer.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := SelectFolder(context.Background(), Options{
				Title:    "Main folder",
				StartDir: start,
				Input:    strings.NewReader(tt.input),
				Output:   &out,
			})

			assert.Contains(t, out.String(), "Main folder")
			if tt.kind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.kind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectFolder_CancelledMessage(t *testing.T) {
	_, err := SelectFolder(context.Background(), Options{
		StartDir: t.TempDir(),
		Input:    strings.NewReader(""),
		Output:   &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Equal(t, "未选择文件夹", err.Error())
}

func TestFinish(t *testing.T) {
	got, err := finish("/a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", got)

	_, err = finish("")
	assert.ErrorIs(t, err, organizer.ErrUserCancelled)

	_, err = finish("bad\xfe")
	assert.ErrorIs(t, err, organizer.ErrInvalidPath)
	assert.Equal(t, "文件夹路径无效", err.Error())
}
