package preview_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/convert"
	_ "github.com/srlehn/imgconv/internal/encoder/encall"
	"github.com/srlehn/imgconv/preview"
)

func newModel(t *testing.T) (preview.Model, *convert.Converter) {
	t.Helper()
	conv, err := convert.NewConverter(convert.SetFormat(convert.PNG))
	require.NoError(t, err)
	require.NoError(t, conv.SetSource(solid(200, 100, color.NRGBA{R: 10, G: 20, B: 30, A: 255})))
	m := preview.NewModel(context.Background(), conv, &preview.Blocks{Profile: termenv.Ascii})
	mdl, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	require.NotNil(t, cmd)
	mdl, _ = mdl.Update(cmd())
	return mdl.(preview.Model), conv
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModelKeys(t *testing.T) {
	m, conv := newModel(t)
	assert.Equal(t, image.Pt(200, 100), conv.Settings().Size())

	var mdl tea.Model = m
	mdl, cmd := mdl.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.NotNil(t, cmd)
	assert.Equal(t, 201, conv.Settings().Width)
	assert.Equal(t, 100, conv.Settings().Height)

	mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, image.Pt(191, 95), conv.Settings().Size())

	mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, image.Pt(188, 94), conv.Settings().Size())

	mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyShiftDown})
	assert.Equal(t, image.Pt(168, 84), conv.Settings().Size())
	mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyShiftUp})
	assert.Equal(t, image.Pt(188, 94), conv.Settings().Size())

	mdl, _ = mdl.Update(runes(`f`))
	assert.Equal(t, convert.Lanczos3, convert.Filters()[len(convert.Filters())-1])
	assert.Equal(t, convert.Nearest, conv.Settings().Filter, `wraps around`)
	mdl, _ = mdl.Update(runes(`F`))
	assert.Equal(t, convert.Lanczos3, conv.Settings().Filter)

	mdl, _ = mdl.Update(runes(`o`))
	assert.Equal(t, convert.JPEG, conv.Format())

	mdl, cmd = mdl.Update(runes(`l`))
	assert.Nil(t, cmd)
	assert.False(t, conv.AspectLocked())
	mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, image.Pt(188, 95), conv.Settings().Size())

	_, cmd = mdl.Update(runes(`q`))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelDropsStalePreview(t *testing.T) {
	m, _ := newModel(t)
	var mdl tea.Model = m
	mdl, first := mdl.Update(tea.KeyMsg{Type: tea.KeyLeft})
	mdl, second := mdl.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, first)
	require.NotNil(t, second)

	mdl, _ = mdl.Update(second())
	view := mdl.View()
	mdl, _ = mdl.Update(first())
	assert.Equal(t, view, mdl.View(), `an older preview must not replace a newer one`)
	assert.Contains(t, view, `198×99`)
}

func TestModelSave(t *testing.T) {
	m, conv := newModel(t)
	dir := t.TempDir()
	var mdl tea.Model = m

	mdl, cmd := mdl.Update(runes(`s`))
	assert.Contains(t, mdl.View(), `save as: `)
	_ = cmd

	// replace the prefilled value
	for i := 0; i < len(`output.png`); i++ {
		mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	target := filepath.Join(dir, `icon`)
	mdl, _ = mdl.Update(runes(target))
	mdl, cmd = mdl.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	mdl, _ = mdl.Update(cmd())

	assert.Contains(t, mdl.View(), `saved `)
	_, err := os.Stat(target + `.png`)
	assert.NoError(t, err)
	assert.Equal(t, target+`.png`, conv.LastSave().Path)

	mdl, _ = mdl.Update(runes(`s`))
	mdl, cmd = mdl.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.NotContains(t, mdl.View(), `save as: `)
}

func TestModelLoadResult(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), `nothing loaded`)
	assert.Contains(t, m.View(), `not saved yet`)

	p := filepath.Join(t.TempDir(), `src.png`)
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 20, 10))))
	require.NoError(t, f.Close())

	conv, err := convert.NewConverter(convert.SetFormat(convert.PNG))
	require.NoError(t, err)
	require.NoError(t, conv.Load(p))
	var mdl tea.Model = preview.NewModel(context.Background(), conv, &preview.Blocks{Profile: termenv.Ascii})
	mdl, _ = mdl.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, mdl.View(), `loaded src.png`)

	require.NoError(t, os.Remove(p))
	mdl, cmd := mdl.Update(runes(`r`))
	require.NotNil(t, cmd)
	mdl, _ = mdl.Update(cmd())
	assert.Contains(t, mdl.View(), `load failed: `)
	assert.Error(t, conv.LastLoad().Err)
	assert.Equal(t, image.Pt(20, 10), conv.Source().Size(), `the previous source is kept`)
}
