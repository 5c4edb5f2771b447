package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/xMohnad/SManga/internal/catalog"
)

type pickerMode int

const (
	modeBrowse pickerMode = iota
	modeFilter
	modeEdit
)

// Picker is the interactive catalog browser. It lets the user pick a manga
// to resume, filter the list, edit an entry, or drop one from the catalog.
type Picker struct {
	store  *catalog.Store
	spider string

	all     []catalog.Entry
	visible []catalog.Entry
	cursor  int

	mode     pickerMode
	filter   textinput.Model
	sortDesc bool

	editInputs []textinput.Model
	editFocus  int

	choice *catalog.Entry
	err    error
	width  int
}

// NewPicker builds a picker over the store's current entries, optionally
// restricted to one spider.
func NewPicker(store *catalog.Store, spider string) (*Picker, error) {
	entries, err := store.Entries(spider)
	if err != nil {
		return nil, err
	}

	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	p := &Picker{
		store:  store,
		spider: spider,
		all:    entries,
		filter: filter,
		width:  80,
	}
	p.applyFilter()

	return p, nil
}

// Choice returns the entry selected with enter, or nil if the picker was
// dismissed.
func (p *Picker) Choice() *catalog.Entry { return p.choice }

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch p.mode {
		case modeFilter:
			return p.updateFilter(msg)
		case modeEdit:
			return p.updateEdit(msg)
		default:
			return p.updateBrowse(msg)
		}
	}

	return p, nil
}

func (p *Picker) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return p, tea.Quit

	case "up", "k":
		p.move(-1)
	case "down", "j":
		p.move(1)

	case "/":
		p.mode = modeFilter
		p.filter.Focus()
		return p, textinput.Blink

	case "s":
		p.sortDesc = !p.sortDesc
		p.applyFilter()

	case "ctrl+d":
		if e := p.selected(); e != nil {
			if _, err := p.store.Remove(e.Spider, e.Link); err != nil {
				p.err = err
			} else {
				p.reload()
			}
		}

	case "e":
		if e := p.selected(); e != nil {
			p.startEdit(*e)
			return p, textinput.Blink
		}

	case "enter":
		if e := p.selected(); e != nil {
			chosen := *e
			p.choice = &chosen
			return p, tea.Quit
		}
	}

	return p, nil
}

func (p *Picker) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return p, tea.Quit

	case "esc":
		p.mode = modeBrowse
		p.filter.Blur()
		p.filter.SetValue("")
		p.applyFilter()
		return p, nil

	case "enter":
		p.mode = modeBrowse
		p.filter.Blur()
		return p, nil
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.applyFilter()
	return p, cmd
}

// edit form fields, in order.
const (
	editTitle = iota
	editLink
	editCover
	editFieldCount
)

func (p *Picker) startEdit(e catalog.Entry) {
	p.mode = modeEdit
	p.editFocus = 0
	p.editInputs = make([]textinput.Model, editFieldCount)

	labels := [editFieldCount]string{"Title", "Link", "Cover"}
	values := [editFieldCount]string{e.Title, e.Link, e.Cover}

	for i := range p.editInputs {
		in := textinput.New()
		in.Prompt = labels[i] + ": "
		in.SetValue(values[i])
		in.CharLimit = 256
		if i == 0 {
			in.Focus()
		}
		p.editInputs[i] = in
	}
}

func (p *Picker) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return p, tea.Quit

	case "esc":
		p.mode = modeBrowse
		return p, nil

	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			p.editFocus--
		} else {
			p.editFocus++
		}
		p.editFocus = (p.editFocus + editFieldCount) % editFieldCount

		cmds := make([]tea.Cmd, 0, editFieldCount)
		for i := range p.editInputs {
			if i == p.editFocus {
				cmds = append(cmds, p.editInputs[i].Focus())
			} else {
				p.editInputs[i].Blur()
			}
		}
		return p, tea.Batch(cmds...)

	case "enter":
		return p, p.saveEdit()
	}

	var cmd tea.Cmd
	p.editInputs[p.editFocus], cmd = p.editInputs[p.editFocus].Update(msg)
	return p, cmd
}

func (p *Picker) saveEdit() tea.Cmd {
	orig := p.selected()
	if orig == nil {
		p.mode = modeBrowse
		return nil
	}

	edited := *orig
	edited.Title = strings.TrimSpace(p.editInputs[editTitle].Value())
	edited.Link = strings.TrimSpace(p.editInputs[editLink].Value())
	edited.Cover = strings.TrimSpace(p.editInputs[editCover].Value())

	// Merge first: it validates the edited entry, so a rejected edit
	// leaves the original record untouched.
	if _, err := p.store.Merge(orig.Spider, []catalog.Entry{edited}); err != nil {
		p.err = err
		p.mode = modeBrowse
		return nil
	}

	p.err = nil

	// The link is the entry's identity; once the edited record is in
	// place under the new link, drop the one stored under the old link.
	if edited.Link != orig.Link {
		if _, err := p.store.Remove(orig.Spider, orig.Link); err != nil {
			p.err = err
		}
	}

	p.mode = modeBrowse
	p.reload()
	return nil
}

func (p *Picker) move(delta int) {
	if len(p.visible) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.visible)) % len(p.visible)
}

func (p *Picker) selected() *catalog.Entry {
	if len(p.visible) == 0 || p.cursor >= len(p.visible) {
		return nil
	}
	return &p.visible[p.cursor]
}

func (p *Picker) reload() {
	entries, err := p.store.Entries(p.spider)
	if err != nil {
		p.err = err
		return
	}
	p.all = entries
	p.applyFilter()
}

func (p *Picker) applyFilter() {
	query := strings.TrimSpace(p.filter.Value())

	if query == "" {
		p.visible = append([]catalog.Entry(nil), p.all...)
	} else {
		p.visible = p.visible[:0]
		for _, e := range p.all {
			if fuzzy.MatchNormalizedFold(query, e.Title) ||
				fuzzy.MatchNormalizedFold(query, e.Spider) {
				p.visible = append(p.visible, e)
			}
		}
	}

	if p.sortDesc {
		for i, j := 0, len(p.visible)-1; i < j; i, j = i+1, j-1 {
			p.visible[i], p.visible[j] = p.visible[j], p.visible[i]
		}
	}

	if p.cursor >= len(p.visible) {
		p.cursor = 0
	}
}

func (p *Picker) View() string {
	if len(p.all) == 0 {
		return mutedStyle.Render("No manga saved yet.") + "\n" +
			helpStyle.Render("q: quit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved manga"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d)", len(p.visible))))
	b.WriteString("\n\n")

	if p.mode == modeFilter || p.filter.Value() != "" {
		b.WriteString(p.filter.View())
		b.WriteString("\n\n")
	}

	if p.mode == modeEdit {
		b.WriteString(titleStyle.Render("Edit entry"))
		b.WriteString("\n")
		for i := range p.editInputs {
			b.WriteString(p.editInputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("tab: next field • enter: save • esc: cancel"))
		return b.String()
	}

	if len(p.visible) == 0 {
		b.WriteString(mutedStyle.Render("Nothing matches the filter."))
		b.WriteString("\n")
	}

	for i, e := range p.visible {
		line := fmt.Sprintf("%-12s %s", e.Spider, Truncate(e.Title, 40))
		last := e.LastChapter().Label
		if last != "" {
			line += mutedStyle.Render("  — " + Truncate(last, 26))
		}

		if i == p.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + p.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"↑/k ↓/j: move • enter: resume • /: filter • s: sort • e: edit • ctrl+d: delete • q: quit",
	))

	return b.String()
}

// RunPicker runs the picker to completion and returns the chosen entry, or
// nil when the user backed out.
func RunPicker(store *catalog.Store, spider string) (*catalog.Entry, error) {
	p, err := NewPicker(store, spider)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(p).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	return final.(*Picker).Choice(), nil
}
