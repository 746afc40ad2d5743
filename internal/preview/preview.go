// Package preview turns a pending tool invocation into titled sections of styled lines for review.
package preview

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"permit/internal/linediff"
	"permit/internal/logger"
	"permit/internal/markup"
	"permit/internal/render"
	"permit/internal/sgr"
	"permit/internal/shell"

	"github.com/google/uuid"
)

// DefaultSummaryWidth bounds Preview.Summary when Options.SummaryWidth is unset.
const DefaultSummaryWidth = 80

// Section is a labeled block of the preview.
type Section struct {
	Label string
	Lines []render.Line
}

// Preview is the rendered form of one invocation.
type Preview struct {
	RequestID string
	Tool      string
	Title     string
	Summary   string
	Sections  []Section
}

// Options configures a Builder.
type Options struct {
	// ReadFile loads current file content for edit anchoring; defaults to os.ReadFile.
	ReadFile     func(path string) ([]byte, error)
	SummaryWidth int
	Log          *logger.LogEntry
}

// Builder builds previews. It is safe for concurrent use when ReadFile is.
type Builder struct {
	readFile     func(string) ([]byte, error)
	summaryWidth int
	log          *logger.LogEntry
}

// New returns a Builder for opts.
func New(opts Options) *Builder {
	b := &Builder{
		readFile:     opts.ReadFile,
		summaryWidth: opts.SummaryWidth,
		log:          opts.Log,
	}
	if b.readFile == nil {
		b.readFile = os.ReadFile
	}
	if b.summaryWidth <= 0 {
		b.summaryWidth = DefaultSummaryWidth
	}
	if b.log == nil {
		b.log = logger.Named("preview")
	}
	return b
}

var (
	textStyle  = render.Plain(render.ColorDefault)
	dimStyle   = render.Plain(render.ColorDim)
	fieldStyle = render.Plain(render.ColorLabel)
)

// Build renders inv. The only error is a tool_input that does not decode.
func (b *Builder) Build(inv Invocation) (Preview, error) {
	p := Preview{RequestID: uuid.NewString(), Tool: inv.ToolName, Title: inv.ToolName}
	log := b.log.WithField("request_id", p.RequestID).WithField("tool", inv.ToolName)

	var err error
	switch inv.ToolName {
	case "Bash":
		err = b.bash(inv, &p)
	case "Edit":
		err = b.edit(inv, &p, log)
	case "MultiEdit":
		err = b.multiEdit(inv, &p, log)
	case "Write":
		err = b.write(inv, &p, log)
	case "Read":
		err = b.read(inv, &p)
	case "NotebookEdit":
		err = b.notebookEdit(inv, &p)
	case "Glob", "Grep":
		err = b.search(inv, &p)
	case "WebFetch":
		err = b.webFetch(inv, &p)
	case "WebSearch":
		err = b.webSearch(inv, &p)
	case "Task":
		err = b.task(inv, &p)
	case "AskUserQuestion":
		err = b.ask(inv, &p)
	default:
		b.generic(inv, &p)
	}
	if err != nil {
		log.Warnf("preview failed: %v", err)
		return Preview{}, err
	}
	b.appendResponse(inv, &p)
	if p.Summary == "" {
		p.Summary = p.Title
	}
	log.WithField("sections", len(p.Sections)).Info("preview built")
	return p, nil
}

func (b *Builder) bash(inv Invocation, p *Preview) error {
	var in bashInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Summary = b.summary(firstNonEmpty(in.Description, in.Command))
	p.Sections = append(p.Sections, Section{Label: "Command", Lines: shell.HighlightLines(strings.TrimRight(in.Command, "\n"))})
	if strings.TrimSpace(in.Description) != "" {
		p.Sections = append(p.Sections, Section{Label: "Description", Lines: markup.RenderDocument(in.Description, textStyle)})
	}
	var opts []render.Line
	if in.RunInBackground {
		opts = append(opts, fieldLine("background", "yes"))
	}
	if in.Timeout > 0 {
		opts = append(opts, fieldLine("timeout", fmt.Sprintf("%dms", in.Timeout)))
	}
	if len(opts) > 0 {
		p.Sections = append(p.Sections, Section{Label: "Options", Lines: opts})
	}
	return nil
}

func (b *Builder) edit(inv Invocation, p *Preview, log *logger.LogEntry) error {
	var in editInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	path := displayPath(inv.Cwd, in.FilePath)
	p.Title = "Edit " + path
	p.Summary = b.summary("Edit " + path)
	content := b.load(inv.Cwd, in.FilePath, log)
	p.Sections = append(p.Sections, b.editSection("Changes", content, in, log))
	return nil
}

func (b *Builder) multiEdit(inv Invocation, p *Preview, log *logger.LogEntry) error {
	var in multiEditInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	path := displayPath(inv.Cwd, in.FilePath)
	p.Title = fmt.Sprintf("Edit %s (%d edits)", path, len(in.Edits))
	p.Summary = b.summary(p.Title)
	content := b.load(inv.Cwd, in.FilePath, log)
	for i, e := range in.Edits {
		p.Sections = append(p.Sections, b.editSection(fmt.Sprintf("Edit %d/%d", i+1, len(in.Edits)), content, e, log))
	}
	return nil
}

func (b *Builder) editSection(label, content string, in editInput, log *logger.LogEntry) Section {
	line, status := linediff.FindStartLine(content, in.OldString)
	if status != linediff.AnchorFound {
		log.WithField("anchor", status.String()).Warn("edit anchor not found; line numbers are approximate")
		label += " (line numbers approximate)"
	}
	if in.ReplaceAll {
		label += " (all occurrences)"
	}
	rows := linediff.Emphasize(linediff.Unified(in.OldString, in.NewString, line))
	return Section{Label: label, Lines: linediff.Lines(rows)}
}

func (b *Builder) write(inv Invocation, p *Preview, log *logger.LogEntry) error {
	var in writeInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	path := displayPath(inv.Cwd, in.FilePath)
	existing, err := b.readFile(resolvePath(inv.Cwd, in.FilePath))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("read %s: %v", in.FilePath, err)
		}
		p.Title = "Create " + path
		p.Summary = b.summary(p.Title)
		rows := linediff.Format(linediff.Additions(in.Content), 1)
		p.Sections = append(p.Sections, Section{Label: "New file", Lines: linediff.Lines(rows)})
		return nil
	}
	p.Title = "Overwrite " + path
	p.Summary = b.summary(p.Title)
	rows := linediff.Emphasize(linediff.Unified(string(existing), in.Content, 1))
	p.Sections = append(p.Sections, Section{Label: "Changes", Lines: linediff.Lines(rows)})
	return nil
}

func (b *Builder) read(inv Invocation, p *Preview) error {
	var in readInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	path := displayPath(inv.Cwd, in.FilePath)
	p.Title = "Read " + path
	p.Summary = b.summary(p.Title)
	lines := []render.Line{fieldLine("path", in.FilePath)}
	if in.Offset > 0 || in.Limit > 0 {
		lines = append(lines, fieldLine("lines", lineRange(in.Offset, in.Limit)))
	}
	p.Sections = append(p.Sections, Section{Label: "File", Lines: lines})
	return nil
}

func (b *Builder) notebookEdit(inv Invocation, p *Preview) error {
	var in notebookEditInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	mode := firstNonEmpty(in.EditMode, "replace")
	path := displayPath(inv.Cwd, in.NotebookPath)
	p.Title = fmt.Sprintf("Notebook %s %s", mode, path)
	p.Summary = b.summary(p.Title)
	fields := []render.Line{fieldLine("mode", mode)}
	if in.CellID != "" {
		fields = append(fields, fieldLine("cell", in.CellID))
	}
	if in.CellType != "" {
		fields = append(fields, fieldLine("type", in.CellType))
	}
	p.Sections = append(p.Sections, Section{Label: "Cell", Lines: fields})
	if mode == "delete" {
		return nil
	}
	var src []render.Line
	if in.CellType == "markdown" {
		src = markup.RenderDocument(in.NewSource, textStyle)
	} else {
		src = linediff.Lines(linediff.Format(linediff.Additions(in.NewSource), 1))
	}
	p.Sections = append(p.Sections, Section{Label: "Source", Lines: src})
	return nil
}

func (b *Builder) search(inv Invocation, p *Preview) error {
	var in searchInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Title = fmt.Sprintf("%s %s", inv.ToolName, in.Pattern)
	p.Summary = b.summary(p.Title)
	lines := []render.Line{fieldLine("pattern", in.Pattern)}
	for _, f := range [][2]string{{"path", in.Path}, {"glob", in.Glob}, {"type", in.Type}, {"output", in.OutputMode}} {
		if f[1] != "" {
			lines = append(lines, fieldLine(f[0], f[1]))
		}
	}
	p.Sections = append(p.Sections, Section{Label: "Search", Lines: lines})
	return nil
}

func (b *Builder) webFetch(inv Invocation, p *Preview) error {
	var in webFetchInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Title = "Fetch " + in.URL
	p.Summary = b.summary(p.Title)
	p.Sections = append(p.Sections, Section{Label: "URL", Lines: []render.Line{render.NewLine(render.Run(in.URL, fieldStyle))}})
	if strings.TrimSpace(in.Prompt) != "" {
		p.Sections = append(p.Sections, Section{Label: "Prompt", Lines: markup.RenderDocument(in.Prompt, textStyle)})
	}
	return nil
}

func (b *Builder) webSearch(inv Invocation, p *Preview) error {
	var in webSearchInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Title = "Search the web"
	p.Summary = b.summary("Search the web: " + in.Query)
	lines := []render.Line{fieldLine("query", in.Query)}
	if len(in.AllowedDomains) > 0 {
		lines = append(lines, fieldLine("only", strings.Join(in.AllowedDomains, ", ")))
	}
	if len(in.BlockedDomains) > 0 {
		lines = append(lines, fieldLine("never", strings.Join(in.BlockedDomains, ", ")))
	}
	p.Sections = append(p.Sections, Section{Label: "Query", Lines: lines})
	return nil
}

func (b *Builder) task(inv Invocation, p *Preview) error {
	var in taskInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Title = "Task " + firstNonEmpty(in.SubagentType, "agent")
	p.Summary = b.summary(firstNonEmpty(in.Description, in.Prompt))
	if in.Description != "" {
		p.Sections = append(p.Sections, Section{Label: "Description", Lines: []render.Line{render.NewLine(markup.RenderInline(in.Description, textStyle)...)}})
	}
	p.Sections = append(p.Sections, Section{Label: "Prompt", Lines: markup.RenderDocument(in.Prompt, textStyle)})
	return nil
}

func (b *Builder) ask(inv Invocation, p *Preview) error {
	var in askInput
	if err := decodeInput(inv, &in); err != nil {
		return err
	}
	p.Title = "Question"
	if len(in.Questions) > 1 {
		p.Title = fmt.Sprintf("%d questions", len(in.Questions))
	}
	if len(in.Questions) > 0 {
		p.Summary = b.summary(in.Questions[0].Question)
	}
	for i, q := range in.Questions {
		label := firstNonEmpty(q.Header, fmt.Sprintf("Question %d", i+1))
		lines := []render.Line{render.NewLine(markup.RenderInline(q.Question, textStyle.Bold())...)}
		for _, opt := range q.Options {
			runs := []render.StyledRun{render.Run("• ", dimStyle)}
			runs = append(runs, markup.RenderInline(opt.Label, textStyle)...)
			if opt.Description != "" {
				runs = append(runs, render.Run(" — ", dimStyle))
				runs = append(runs, markup.RenderInline(opt.Description, dimStyle)...)
			}
			lines = append(lines, render.NewLine(runs...))
		}
		if q.MultiSelect {
			lines = append(lines, render.NewLine(render.Run("(multiple choices allowed)", dimStyle.Italic())))
		}
		p.Sections = append(p.Sections, Section{Label: label, Lines: lines})
	}
	return nil
}

func (b *Builder) generic(inv Invocation, p *Preview) {
	var v any
	text := string(inv.Input)
	if err := json.Unmarshal(inv.Input, &v); err == nil {
		if pretty, err := json.MarshalIndent(v, "", "  "); err == nil {
			text = string(pretty)
		}
	}
	lines := []render.Line{}
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, render.NewLine(render.Run(l, textStyle.Fixed())))
	}
	p.Sections = append(p.Sections, Section{Label: "Input", Lines: lines})
}

// appendResponse adds terminal output sections when the payload carries a tool_response.
func (b *Builder) appendResponse(inv Invocation, p *Preview) {
	if len(inv.Response) == 0 || string(inv.Response) == "null" {
		return
	}
	var text string
	if err := json.Unmarshal(inv.Response, &text); err == nil {
		if text != "" {
			p.Sections = append(p.Sections, Section{Label: "Output", Lines: sgr.DecodeLines(text, render.ColorDefault)})
		}
		return
	}
	var resp commandResponse
	if err := json.Unmarshal(inv.Response, &resp); err != nil {
		return
	}
	if resp.Stdout != "" {
		p.Sections = append(p.Sections, Section{Label: "Output", Lines: sgr.DecodeLines(strings.TrimRight(resp.Stdout, "\n"), render.ColorDefault)})
	}
	if resp.Stderr != "" {
		p.Sections = append(p.Sections, Section{Label: "Errors", Lines: sgr.DecodeLines(strings.TrimRight(resp.Stderr, "\n"), render.ColorWarning)})
	}
}

// load reads a file for anchoring; failures degrade to empty content.
func (b *Builder) load(cwd, path string, log *logger.LogEntry) string {
	data, err := b.readFile(resolvePath(cwd, path))
	if err != nil {
		log.Warnf("read %s: %v", path, err)
		return ""
	}
	return string(data)
}

func (b *Builder) summary(text string) string {
	return markup.Summary(text, b.summaryWidth)
}

func fieldLine(name, value string) render.Line {
	return render.NewLine(render.Run(name+": ", fieldStyle), render.Run(value, textStyle))
}

func lineRange(offset, limit int) string {
	start := max(offset, 1)
	if limit <= 0 {
		return fmt.Sprintf("%d-", start)
	}
	return fmt.Sprintf("%d-%d", start, start+limit-1)
}

func resolvePath(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) || cwd == "" {
		return path
	}
	return filepath.Join(cwd, path)
}

// displayPath shortens path relative to cwd when it lies inside it.
func displayPath(cwd, path string) string {
	if cwd == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
