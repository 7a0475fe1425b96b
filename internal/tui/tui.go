package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemdeck/internal/config"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/store"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

// Options tune rendering and logging for the interactive view.
type Options struct {
	DateLayout string
	Logger     *zap.Logger
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Title }
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Title }

// itemDelegate renders each item as a three-line card.
type itemDelegate struct {
	layout string
}

func (d itemDelegate) Height() int                               { return 3 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	lines := ui.CardLines(it.item, d.layout)
	prefix := strings.Repeat(" ", len(t.Cursor))
	if index == m.Index() {
		lines[0] = t.Selected.Render(ui.OneLine(it.item.Title, 80))
		fmt.Fprintln(w, t.Accent.Render(t.Cursor)+lines[0])
	} else {
		fmt.Fprintln(w, prefix+lines[0])
	}
	fmt.Fprintln(w, prefix+lines[1])
	fmt.Fprint(w, prefix+lines[2])
}

type mode int

const (
	modeList mode = iota
	modeForm
)

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit"))
	deleteBind = key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete"))
	quitBind   = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
	forceQuit  = key.NewBinding(key.WithKeys("ctrl+c"))

	submitBind = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))
	cancelBind = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	switchBind = key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field"))
	// enter on the title line moves on; in the description it is a newline.
	nextBind = key.NewBinding(key.WithKeys("enter"))
)

// Model is the Bubble Tea model: a list of item cards plus the add/edit form.
// Every mutation goes through the store; the list is rebuilt from it afterwards.
type Model struct {
	store  *store.Store
	log    *zap.Logger
	list   list.Model
	form   itemForm
	mode   mode
	status string
	width  int
	height int
}

func New(s *store.Store, opt Options) Model {
	if opt.DateLayout == "" {
		opt.DateLayout = config.DefaultDateLayout
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	t := ui.Current()

	l := list.New(toListItems(s.Items()), itemDelegate{layout: opt.DateLayout}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, deleteBind, quitBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, deleteBind, quitBind} }
	l.SetShowTitle(true)

	m := Model{
		store: s,
		log:   opt.Logger,
		list:  l,
		form:  newItemForm(),
	}
	m.list.Title = m.header()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(s *store.Store, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, forceQuit) {
		return m, tea.Quit
	}
	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, quitBind):
			return m, tea.Quit
		case key.Matches(k, addBind):
			cmd := m.openForm(nil)
			return m, cmd
		case key.Matches(k, editBind):
			if it, ok := m.selected(); ok {
				cmd := m.openForm(&it)
				return m, cmd
			}
			return m, nil
		case key.Matches(k, deleteBind):
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
				m.status = "deleted " + ui.OneLine(it.Title, 40)
				m.log.Info("item deleted", zap.String("id", it.ID))
				cmd := m.refresh(m.list.Index())
				return m, cmd
			}
			return m, nil
		}
	}
	m.status = ""
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, cancelBind):
			m.form.close()
			m.mode = modeList
			m.resize()
			return m, nil
		case key.Matches(k, submitBind):
			return m.submit()
		case key.Matches(k, switchBind):
			cmd := m.form.next()
			return m, cmd
		case key.Matches(k, nextBind) && m.form.focus == fieldTitle:
			cmd := m.form.focusField(fieldDescription)
			return m, cmd
		}
	}
	cmd := m.form.update(msg)
	return m, cmd
}

// submit enforces required fields, then hands the draft to the store.
func (m Model) submit() (tea.Model, tea.Cmd) {
	d := m.form.draft()
	if err := d.Validate(); err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	sel := m.list.Index()
	if m.form.editing() {
		id := m.form.editID
		m.store.Update(id, d.Title, d.Description)
		m.status = "updated " + ui.OneLine(d.Title, 40)
		m.log.Info("item updated", zap.String("id", id))
	} else {
		it := m.store.Add(d.Title, d.Description)
		sel = m.store.Len() - 1
		m.status = "added " + ui.OneLine(d.Title, 40)
		m.log.Info("item added", zap.String("id", it.ID))
	}
	m.form.close()
	m.mode = modeList
	m.resize()
	cmd := m.refresh(sel)
	return m, cmd
}

func (m *Model) openForm(it *model.Item) tea.Cmd {
	m.mode = modeForm
	m.status = ""
	m.resize()
	return m.form.open(it)
}

// refresh re-reads the store and keeps the cursor near sel.
func (m *Model) refresh(sel int) tea.Cmd {
	items := m.store.Items()
	cmd := m.list.SetItems(toListItems(items))
	if sel >= len(items) {
		sel = len(items) - 1
	}
	if sel >= 0 {
		m.list.Select(sel)
	}
	m.list.Title = m.header()
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

func (m Model) header() string {
	t := ui.Current()
	return fmt.Sprintf("%s   %s %d", t.Title.Render("Items"), t.Accent.Render("Total"), m.store.Len())
}

func (m *Model) resize() {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		return
	}
	listHeight := h - 4
	if m.mode == modeForm {
		listHeight = 0
	}
	m.list.SetSize(w-4, max(listHeight, 0))
	m.form.setWidth(w - 8)
}

func (m Model) View() string {
	t := ui.Current()
	var content string
	if m.mode == modeForm {
		content = m.form.view()
	} else {
		content = m.list.View()
		if m.store.Len() == 0 {
			content = m.list.Title + "\n\n" + t.Muted.Render("No items yet. Press a to add one.")
		}
		if m.status != "" {
			content += "\n" + t.Status.Render("✔ "+m.status)
		}
	}
	return ui.Panel([]string{content})
}

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{item: it})
	}
	return out
}
