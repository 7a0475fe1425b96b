package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
)

// itemForm is shared by add and edit. editID is empty when adding.
type itemForm struct {
	title  textinput.Model
	desc   textarea.Model
	focus  field
	editID string
	err    string
}

func newItemForm() itemForm {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter title"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Enter description"
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetHeight(3)

	return itemForm{title: ti, desc: ta}
}

// open resets the form, prefilled from it when editing.
func (f *itemForm) open(it *model.Item) tea.Cmd {
	f.err = ""
	f.editID = ""
	f.title.SetValue("")
	f.desc.SetValue("")
	if it != nil {
		f.editID = it.ID
		f.title.SetValue(it.Title)
		f.title.CursorEnd()
		f.desc.SetValue(it.Description)
	}
	return f.focusField(fieldTitle)
}

func (f *itemForm) close() {
	f.title.Blur()
	f.desc.Blur()
	f.err = ""
}

func (f *itemForm) focusField(which field) tea.Cmd {
	f.focus = which
	if which == fieldTitle {
		f.desc.Blur()
		return f.title.Focus()
	}
	f.title.Blur()
	return f.desc.Focus()
}

func (f *itemForm) next() tea.Cmd {
	if f.focus == fieldTitle {
		return f.focusField(fieldDescription)
	}
	return f.focusField(fieldTitle)
}

func (f itemForm) editing() bool { return f.editID != "" }

func (f itemForm) draft() model.Draft {
	return model.Draft{Title: f.title.Value(), Description: f.desc.Value()}.Normalize()
}

func (f *itemForm) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.title.Width = w - 4
	f.desc.SetWidth(w)
}

func (f *itemForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

func (f itemForm) view() string {
	t := ui.Current()
	heading := "Add New Item"
	submit := "ctrl+s add item"
	if f.editing() {
		heading = "Edit Item"
		submit = "ctrl+s update item"
	}
	var b strings.Builder
	b.WriteString(t.Title.Render(heading))
	if f.err != "" {
		b.WriteString(" — " + t.Error.Render(f.err))
	}
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("Title") + "\n")
	b.WriteString(f.title.View() + "\n\n")
	b.WriteString(t.Label.Render("Description") + "\n")
	b.WriteString(f.desc.View() + "\n\n")
	b.WriteString(t.Muted.Render(submit + " • tab switch field • esc cancel"))
	return b.String()
}
