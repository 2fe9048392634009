package preview

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/srlehn/imgconv/convert"
)

// lines taken by the title, status, result, prompt and help
const chromeLines = 5

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color(`9`))
	styleDim   = lipgloss.NewStyle().Faint(true)
)

type previewMsg struct {
	gen      uint64
	rendered string
	err      error
}

type loadedMsg struct{}

type savedMsg struct {
	path string
	size int64
	err  error
}

var _ tea.Model = Model{}

// Model is the interactive conversion screen. Every parameter change starts
// an asynchronous preview; results of outdated requests are dropped.
type Model struct {
	ctx       context.Context
	conv      *convert.Converter
	blocks    *Blocks
	keys      keyMap
	help      help.Model
	input     textinput.Model
	prompting bool
	width     int
	height    int
	gen       uint64
	rendered  string
	renderErr error
	result    string
	resultErr bool
}

// NewModel returns a model editing conv. The preview is rendered with blocks.
func NewModel(ctx context.Context, conv *convert.Converter, blocks *Blocks) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if blocks == nil {
		blocks = NewBlocks()
	}
	ti := textinput.New()
	ti.Prompt = `save as: `
	ti.CharLimit = 4096
	sz := TerminalSize()
	return Model{
		ctx:    ctx,
		conv:   conv,
		blocks: blocks,
		keys:   keys,
		help:   help.New(),
		input:  ti,
		width:  sz.X,
		height: sz.Y,
	}
}

func (m Model) Init() tea.Cmd { return m.previewCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.gen++
		return m, m.previewCmd()
	case previewMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.rendered, m.renderErr = msg.rendered, msg.err
		return m, nil
	case loadedMsg:
		m.gen++
		return m, m.previewCmd()
	case savedMsg:
		if msg.err != nil {
			m.result, m.resultErr = `save failed: `+msg.err.Error(), true
		} else {
			m.result, m.resultErr = `saved `+msg.path+` (`+humanize.Bytes(uint64(msg.size))+`)`, false
		}
		return m, nil
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.prompting = false
		m.input.Blur()
		return m, m.saveCmd(m.input.Value())
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.conv.Settings()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.WidthDown):
		m.conv.SetWidth(s.Width - 1)
	case key.Matches(msg, m.keys.WidthUp):
		m.conv.SetWidth(s.Width + 1)
	case key.Matches(msg, m.keys.WidthDown10):
		m.conv.SetWidth(s.Width - 10)
	case key.Matches(msg, m.keys.WidthUp10):
		m.conv.SetWidth(s.Width + 10)
	case key.Matches(msg, m.keys.HeightDown):
		m.conv.SetHeight(s.Height - 1)
	case key.Matches(msg, m.keys.HeightUp):
		m.conv.SetHeight(s.Height + 1)
	case key.Matches(msg, m.keys.HeightDown10):
		m.conv.SetHeight(s.Height - 10)
	case key.Matches(msg, m.keys.HeightUp10):
		m.conv.SetHeight(s.Height + 10)
	case key.Matches(msg, m.keys.NextFilter):
		m.conv.SetFilter(cycle(convert.Filters(), s.Filter, 1))
	case key.Matches(msg, m.keys.PrevFilter):
		m.conv.SetFilter(cycle(convert.Filters(), s.Filter, -1))
	case key.Matches(msg, m.keys.NextFormat):
		m.conv.SetFormat(cycle(convert.Formats(), m.conv.Format(), 1))
	case key.Matches(msg, m.keys.Lock):
		m.conv.SetAspectLock(!m.conv.AspectLocked())
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()
	case key.Matches(msg, m.keys.SaveAs):
		m.prompting = true
		m.input.SetValue(m.defaultOutput())
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd(m.defaultOutput())
	default:
		return m, nil
	}
	if !m.conv.Dirty() {
		return m, nil
	}
	m.gen++
	return m, m.previewCmd()
}

func (m Model) previewArea() image.Point {
	return image.Pt(max(m.width, 1), max(m.height-chromeLines, 1))
}

func (m Model) previewCmd() tea.Cmd {
	gen, area, conv, blocks, ctx := m.gen, m.previewArea(), m.conv, m.blocks, m.ctx
	return func() tea.Msg {
		buf, err := conv.Preview(ctx)
		if err != nil {
			return previewMsg{gen: gen, err: err}
		}
		s, err := blocks.Render(buf, area)
		return previewMsg{gen: gen, rendered: s, err: err}
	}
}

// reloadCmd reads the source file again. Failures are reported through
// Converter.LastLoad and keep the previous source.
func (m Model) reloadCmd() tea.Cmd {
	conv := m.conv
	path := conv.SourcePath()
	if len(path) == 0 {
		return nil
	}
	return func() tea.Msg {
		_ = conv.Load(path)
		return loadedMsg{}
	}
}

func (m Model) saveCmd(path string) tea.Cmd {
	conv := m.conv
	path = strings.TrimSpace(path)
	return func() tea.Msg {
		p, err := conv.Save(path)
		if err != nil {
			return savedMsg{path: p, err: err}
		}
		var size int64
		if fi, err := os.Stat(p); err == nil {
			size = fi.Size()
		}
		return savedMsg{path: p, size: size}
	}
}

// defaultOutput is the source path with the extension of the destination format.
func (m Model) defaultOutput() string {
	src := m.conv.SourcePath()
	if len(src) == 0 {
		src = `output`
	}
	base := strings.TrimSuffix(src, filepath.Ext(src))
	return convert.EnsureExtension(base, m.conv.Format())
}

func (m Model) status() string {
	s := m.conv.Settings()
	var src string
	if buf := m.conv.Source(); buf != nil {
		src = sizeString(buf.Size())
	} else {
		src = `no source`
	}
	lock := `unlocked`
	if m.conv.AspectLocked() {
		lock = `locked`
	}
	return src + ` → ` + sizeString(s.Size()) + ` · ` + s.Filter.String() + ` · ` + m.conv.Format().String() + ` · aspect ` + lock
}

func (m Model) loadResult() string {
	r := m.conv.LastLoad()
	switch {
	case !r.Done:
		return styleDim.Render(`nothing loaded`)
	case r.Err != nil:
		return styleError.Render(`load failed: ` + r.Err.Error())
	}
	return `loaded ` + filepath.Base(r.Path)
}

func (m Model) saveResult() string {
	switch {
	case len(m.result) == 0:
		return styleDim.Render(`not saved yet`)
	case m.resultErr:
		return styleError.Render(m.result)
	}
	return m.result
}

func (m Model) View() string {
	w := uint(max(m.width, 1))
	var b strings.Builder
	title := `imgconv`
	if p := m.conv.SourcePath(); len(p) > 0 {
		title += ` ` + filepath.Base(p)
	}
	b.WriteString(styleTitle.Render(truncate.StringWithTail(title, w, `…`)))
	b.WriteByte('\n')
	b.WriteString(truncate.StringWithTail(m.status(), w, `…`))
	b.WriteByte('\n')
	b.WriteString(truncate.StringWithTail(m.loadResult()+` · `+m.saveResult(), w, `…`))
	b.WriteByte('\n')
	if m.renderErr != nil {
		b.WriteString(styleError.Render(truncate.StringWithTail(m.renderErr.Error(), w, `…`)))
	} else {
		b.WriteString(m.rendered)
	}
	b.WriteByte('\n')
	if m.prompting {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func cycle[T comparable](all []T, cur T, step int) T {
	for i, v := range all {
		if v == cur {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return all[0]
}

func sizeString(p image.Point) string { return strconv.Itoa(p.X) + `×` + strconv.Itoa(p.Y) }
