package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"permit/internal/logger"
	"permit/internal/preview"
	"permit/internal/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

func samplePreview(n int) preview.Preview {
	lines := make([]render.Line, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, render.NewLine(render.Run(fmt.Sprintf("line %d", i), render.Plain(render.ColorDefault))))
	}
	return preview.Preview{
		RequestID: "req-1",
		Tool:      "Bash",
		Title:     "Bash",
		Sections:  []preview.Section{{Label: "Command", Lines: lines}},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		v := New(Options{Preview: samplePreview(3)})
		_, cmd := v.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestCopyWritesPlainText(t *testing.T) {
	p := samplePreview(2)
	var got string
	v := New(Options{Preview: p, Copy: func(s string) error {
		got = s
		return nil
	}})
	v.Update(key("c"))
	if got != p.Plain() {
		t.Fatalf("copied %q, want %q", got, p.Plain())
	}
	if !v.Copied() {
		t.Fatalf("Copied() = false after copy")
	}
	if !strings.Contains(v.View(), "copied to clipboard") {
		t.Fatalf("status missing from view:\n%s", v.View())
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	v := New(Options{Preview: samplePreview(1), Copy: func(string) error { return errors.New("no display") }})
	v.Update(key("c"))
	if v.Copied() {
		t.Fatalf("Copied() = true after failure")
	}
	if !strings.Contains(v.View(), "copy failed: no display") {
		t.Fatalf("failure status missing:\n%s", v.View())
	}
}

func TestResizeAndScroll(t *testing.T) {
	v := New(Options{Preview: samplePreview(50)})
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if v.viewport.Width != 40 || v.viewport.Height != 10-chromeHeight {
		t.Fatalf("viewport = %dx%d", v.viewport.Width, v.viewport.Height)
	}
	if v.viewport.YOffset != 0 {
		t.Fatalf("initial offset = %d", v.viewport.YOffset)
	}
	v.Update(key("down"))
	if v.viewport.YOffset != 1 {
		t.Fatalf("offset after down = %d, want 1", v.viewport.YOffset)
	}
	v.Update(key("end"))
	if !v.viewport.AtBottom() {
		t.Fatalf("expected viewport at bottom after end")
	}
	if !strings.Contains(v.View(), "100%") {
		t.Fatalf("expected 100%% in footer:\n%s", v.View())
	}
}

func TestBodyOmitsTitle(t *testing.T) {
	v := New(Options{Preview: samplePreview(1), Palette: render.Palette{}})
	body := v.body()
	if strings.Contains(body, "Bash") {
		t.Fatalf("title should be pinned in the header, body = %q", body)
	}
	if !strings.Contains(body, "Command") || !strings.Contains(body, "line 0") {
		t.Fatalf("body should start with the first section label, got %q", body)
	}
}

func TestFooterRightAlignsPercent(t *testing.T) {
	v := New(Options{Preview: samplePreview(50)})
	v.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	v.Update(key("end"))

	footer := ansi.Strip(v.footer())
	if !strings.HasSuffix(footer, "100%") {
		t.Fatalf("footer should end with the percentage: %q", footer)
	}
	if w := runewidth.StringWidth(footer); w != 60 {
		t.Fatalf("footer width = %d, want 60: %q", w, footer)
	}
}
