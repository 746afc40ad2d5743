package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回查看器退出后的必要信息。
type Result struct {
	Copied bool
}

// Run 封装 Bubble Tea 入口，在备用屏幕中显示预览直到用户退出。
func Run(opts Options, programOptions ...tea.ProgramOption) (Result, error) {
	programOptions = append([]tea.ProgramOption{tea.WithAltScreen()}, programOptions...)
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	viewer, ok := m.(*Viewer)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{Copied: viewer.Copied()}, nil
}
