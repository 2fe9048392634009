package preview

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings of the Model. To work for help it must
// satisfy help.KeyMap.
type keyMap struct {
	WidthDown    key.Binding
	WidthUp      key.Binding
	WidthDown10  key.Binding
	WidthUp10    key.Binding
	HeightDown   key.Binding
	HeightUp     key.Binding
	HeightDown10 key.Binding
	HeightUp10   key.Binding
	NextFilter   key.Binding
	PrevFilter   key.Binding
	NextFormat   key.Binding
	Lock         key.Binding
	Reload       key.Binding
	SaveAs       key.Binding
	Save         key.Binding
	Cancel       key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	WidthDown:    key.NewBinding(key.WithKeys(`left`), key.WithHelp(`←/→`, `width`)),
	WidthUp:      key.NewBinding(key.WithKeys(`right`)),
	WidthDown10:  key.NewBinding(key.WithKeys(`shift+left`), key.WithHelp(`shift+←/→`, `width ±10`)),
	WidthUp10:    key.NewBinding(key.WithKeys(`shift+right`)),
	HeightDown:   key.NewBinding(key.WithKeys(`down`), key.WithHelp(`↓/↑`, `height`)),
	HeightUp:     key.NewBinding(key.WithKeys(`up`)),
	HeightDown10: key.NewBinding(key.WithKeys(`shift+down`), key.WithHelp(`shift+↓/↑`, `height ±10`)),
	HeightUp10:   key.NewBinding(key.WithKeys(`shift+up`)),
	NextFilter:   key.NewBinding(key.WithKeys(`f`), key.WithHelp(`f/F`, `filter`)),
	PrevFilter:   key.NewBinding(key.WithKeys(`F`)),
	NextFormat:   key.NewBinding(key.WithKeys(`o`), key.WithHelp(`o`, `format`)),
	Lock:         key.NewBinding(key.WithKeys(`l`), key.WithHelp(`l`, `aspect lock`)),
	Reload:       key.NewBinding(key.WithKeys(`r`), key.WithHelp(`r`, `reload`)),
	SaveAs:       key.NewBinding(key.WithKeys(`s`), key.WithHelp(`s`, `save as`)),
	Save:         key.NewBinding(key.WithKeys(`enter`), key.WithHelp(`enter`, `save`)),
	Cancel:       key.NewBinding(key.WithKeys(`esc`), key.WithHelp(`esc`, `cancel`)),
	Quit:         key.NewBinding(key.WithKeys(`q`, `ctrl+c`), key.WithHelp(`q`, `quit`)),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WidthDown, k.HeightDown, k.NextFilter, k.NextFormat, k.Lock, k.SaveAs, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.WidthDown, k.WidthDown10, k.HeightDown, k.HeightDown10},
		{k.NextFilter, k.NextFormat, k.Lock, k.Reload},
		{k.SaveAs, k.Save, k.Cancel, k.Quit},
	}
}
