package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

func (m *Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.authField == fieldUsername {
			m.authField = fieldPassword
			m.username.Blur()
			m.password.Focus()
		} else {
			m.authField = fieldUsername
			m.password.Blur()
			m.username.Focus()
		}
		return m, nil

	case "ctrl+t":
		m.deps.Auth.Toggle()
		m.status = ""
		return m, nil

	case "enter":
		u, p := m.username.Value(), m.password.Value()
		if m.authPending || !m.deps.Auth.CanSubmit(u, p) {
			return m, nil
		}
		m.authPending = true
		m.status = ""
		return m, submitAuth(m.ctx, m.deps, u, p)
	}

	var cmd tea.Cmd
	if m.authField == fieldUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusTitle, focusContent:
		return m.updateEditor(msg)
	}

	ws := m.deps.Workspace
	switch msg.String() {
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "q":
		return m, tea.Quit
	case "/":
		m.setFocus(focusSearch)
		return m, nil
	case "n":
		f := ws.Filter()
		return m, createNote(m.ctx, m.deps, f.Folder, tagList(f.Tag))
	case "d":
		if sel, ok := ws.Selected(); ok {
			return m, deleteNote(m.ctx, m.deps, sel.ID)
		}
		return m, nil
	case "t":
		m.setInfo("Theme: %s.", ws.ToggleTheme())
		return m, nil
	case "esc":
		ws.ClearSelection()
		m.syncEditor()
		return m, nil
	case "r":
		m.setInfo("Loading...")
		return m, loadCollections(m.ctx, m.deps)
	case "L":
		return m, logout(m.ctx, m.deps)
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "enter":
		if m.focus == focusSidebar {
			m.applySidebar()
			return m, nil
		}
		if m.editingID != nil {
			m.setFocus(focusTitle)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.deps.Workspace.SetSearch(m.search.Value())
	m.clampCursors()
	return m, cmd
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(focusList)
		return m, m.saveEditor()
	case "tab":
		if m.focus == focusTitle {
			m.setFocus(focusContent)
			return m, nil
		}
		m.setFocus(focusSidebar)
		return m, m.saveEditor()
	case "shift+tab":
		if m.focus == focusContent {
			m.setFocus(focusTitle)
			return m, nil
		}
		m.setFocus(focusList)
		return m, m.saveEditor()
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		if msg.Type == tea.KeyEnter {
			m.setFocus(focusContent)
			return m, nil
		}
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// moveFocus cycles sidebar, list and the editor. The editor is skipped when
// no note is selected.
func (m *Model) moveFocus(step int) tea.Cmd {
	order := []focus{focusSidebar, focusList}
	if m.editingID != nil {
		order = append(order, focusTitle, focusContent)
	}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
		}
	}
	next := order[(cur+step+len(order))%len(order)]
	m.setFocus(next)
	return nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.search.Blur()
	m.title.Blur()
	m.content.Blur()
	switch f {
	case focusSearch:
		m.search.Focus()
	case focusTitle:
		m.title.Focus()
	case focusContent:
		m.content.Focus()
	}
}

func (m *Model) editorFocused() bool {
	return m.focus == focusTitle || m.focus == focusContent
}

// saveEditor sends the fields that differ from the stored note. It returns
// nil when nothing changed.
func (m *Model) saveEditor() tea.Cmd {
	if m.editingID == nil {
		return nil
	}
	ws := m.deps.Workspace
	n, ok := ws.Note(*m.editingID)
	if !ok {
		return nil
	}

	var u models.NoteUpdate
	if title := m.title.Value(); title != n.Title {
		u.Title = &title
	}
	if content := m.content.Value(); content != n.Content {
		u.Content = &content
	}
	if u.IsEmpty() {
		return nil
	}
	m.setInfo("Saving...")
	return updateNote(m.ctx, m.deps, ws.BeginUpdate(n.ID), u)
}

// syncEditor loads the selected note into the editor.
func (m *Model) syncEditor() {
	sel, ok := m.deps.Workspace.Selected()
	if !ok {
		m.editingID = nil
		m.title.SetValue("")
		m.content.SetValue("")
		if m.editorFocused() {
			m.setFocus(focusList)
		}
		return
	}
	id := sel.ID
	m.editingID = &id
	m.title.SetValue(sel.Title)
	m.content.SetValue(sel.Content)
	if i := m.indexOfVisible(id); i >= 0 {
		m.listCursor = i
	}
}

func (m *Model) moveCursor(step int) {
	if m.focus == focusSidebar {
		m.sidebarCursor += step
		m.clampCursors()
		return
	}

	visible := m.deps.Workspace.Visible()
	if len(visible) == 0 {
		return
	}
	m.listCursor += step
	m.clampCursors()
	m.deps.Workspace.Select(visible[m.listCursor].ID)
	m.syncEditor()
}

func (m *Model) clampCursors() {
	m.listCursor = clamp(m.listCursor, len(m.deps.Workspace.Visible()))
	m.sidebarCursor = clamp(m.sidebarCursor, len(m.sidebarItems()))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *Model) indexOfVisible(id models.ID) int {
	for i, n := range m.deps.Workspace.Visible() {
		if n.ID == id {
			return i
		}
	}
	return -1
}

type sidebarKind int

const (
	itemFolder sidebarKind = iota
	itemTag
)

type sidebarItem struct {
	kind  sidebarKind
	id    *models.ID
	label string
}

func (m *Model) sidebarItems() []sidebarItem {
	ws := m.deps.Workspace
	items := []sidebarItem{{kind: itemFolder, label: "All folders"}}
	for _, f := range ws.Folders() {
		items = append(items, sidebarItem{kind: itemFolder, id: models.IDPtr(f.ID), label: f.Name})
	}
	items = append(items, sidebarItem{kind: itemTag, label: "All tags"})
	for _, t := range ws.Tags() {
		items = append(items, sidebarItem{kind: itemTag, id: models.IDPtr(t.ID), label: "#" + t.Name})
	}
	return items
}

func (m *Model) applySidebar() {
	items := m.sidebarItems()
	if m.sidebarCursor >= len(items) {
		return
	}
	it := items[m.sidebarCursor]
	if it.kind == itemFolder {
		m.deps.Workspace.SetFolder(it.id)
	} else {
		m.deps.Workspace.SetTag(it.id)
	}
	m.clampCursors()
}

func tagList(tag *models.ID) []models.ID {
	if tag == nil {
		return nil
	}
	return []models.ID{*tag}
}
