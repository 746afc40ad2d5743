package tui

import (
	"fmt"
	"math"
	"strings"

	"permit/internal/logger"
	"permit/internal/preview"
	"permit/internal/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// 标题行与底部状态行各占一行。
	chromeHeight = 2
)

// Options 配置查看器。
type Options struct {
	Preview preview.Preview
	Palette render.Palette
	// Copy 将纯文本写入剪贴板；为空时使用 clipboard.WriteAll。
	Copy func(string) error
}

// Viewer 是预览的可滚动 Bubble Tea 模型。
type Viewer struct {
	preview  preview.Preview
	palette  render.Palette
	copyFn   func(string) error
	viewport viewport.Model
	width    int
	height   int
	status   string
	copied   bool
	log      *logger.LogEntry
}

// New 创建查看器并填充内容。
func New(opts Options) *Viewer {
	palette := opts.Palette
	if palette == nil {
		palette = render.DefaultPalette(render.ThemeDark)
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	v := &Viewer{
		preview:  opts.Preview,
		palette:  palette,
		copyFn:   copyFn,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
		log:      logger.Named("tui").WithField("request_id", opts.Preview.RequestID),
	}
	v.viewport.SetContent(v.body())
	return v
}

// Copied 报告用户是否已复制预览。
func (v *Viewer) Copied() bool {
	return v.copied
}

func (v *Viewer) Init() tea.Cmd {
	return nil
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "c":
			v.copyPlain()
			return v, nil
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *Viewer) View() string {
	return strings.Join([]string{v.header(), v.viewport.View(), v.footer()}, "\n")
}

func (v *Viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(1, height-chromeHeight)
	v.viewport.SetContent(v.body())
}

func (v *Viewer) copyPlain() {
	if err := v.copyFn(v.preview.Plain()); err != nil {
		v.log.Warnf("copy to clipboard: %v", err)
		v.status = "copy failed: " + err.Error()
		return
	}
	v.copied = true
	v.status = "copied to clipboard"
	v.log.Info("preview copied")
}

// body 渲染除标题外的所有行并按视口宽度硬换行；标题固定在顶部。
func (v *Viewer) body() string {
	lines := v.preview.Lines()
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for len(lines) > 0 && render.IsBlank(lines[0]) {
		lines = lines[1:]
	}
	return ansi.Hardwrap(strings.Join(render.LinesToStrings(lines, v.palette), "\n"), v.width, true)
}

func (v *Viewer) header() string {
	title := render.Run(v.preview.Title, render.Plain(render.ColorTitle).Bold())
	return lipgloss.NewStyle().MaxWidth(v.width).Render(render.ToANSI([]render.StyledRun{title}, v.palette))
}

// footer 左侧为提示，滚动百分比贴右对齐。
func (v *Viewer) footer() string {
	percent := int(math.Round(v.viewport.ScrollPercent() * 100))
	percent = min(max(percent, 0), 100)
	hint := "↑/↓ scroll • c copy • q quit"
	if v.status != "" {
		hint = v.status + " • " + hint
	}
	dim := render.Plain(render.ColorDim)
	left := render.Run(hint, dim)
	right := render.Run(fmt.Sprintf("%3d%%", percent), dim)
	gap := max(2, v.width-render.Width([]render.StyledRun{left, right}))
	runs := []render.StyledRun{left, render.Run(strings.Repeat(" ", gap), dim), right}
	return lipgloss.NewStyle().MaxWidth(v.width).Render(render.ToANSI(runs, v.palette))
}
