package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/services"
	"github.com/dmitrijs2005/gophnotes/internal/client/styles"
)

const (
	snippetRunes = 45
	sidebarWidth = 24
	listWidth    = 52
)

func (m *Model) layout() {
	editorW := m.width - sidebarWidth - listWidth - 6
	if editorW < 20 {
		editorW = 20
	}
	bodyH := m.height - 6
	if bodyH < 5 {
		bodyH = 5
	}
	m.title.Width = editorW - 2
	m.content.SetWidth(editorW)
	m.content.SetHeight(bodyH - 3)
	m.search.Width = 30
}

func (m *Model) styles() styles.Styles {
	return styles.For(m.deps.Workspace.Theme())
}

func (m *Model) View() string {
	if m.view == authView {
		return m.renderAuth()
	}
	return m.renderNotes()
}

func (m *Model) renderAuth() string {
	st := m.styles()
	flow := m.deps.Auth

	heading, other := "Sign in", "sign up"
	if flow.Mode() == services.ModeSignUp {
		heading, other = "Sign up", "sign in"
	}

	field := func(label string, active bool, input string) string {
		marker := "  "
		if active {
			marker = st.Selected.Render("> ")
		}
		return marker + st.Bold.Render(label) + "\n  " + input
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("Notes") + "\n\n")
	b.WriteString(st.Bold.Render(heading) + "\n\n")
	b.WriteString(field("Username", m.authField == fieldUsername, m.username.View()) + "\n\n")
	b.WriteString(field("Password", m.authField == fieldPassword, m.password.View()) + "\n\n")

	submit := "[ " + heading + " ]"
	switch {
	case m.authPending:
		b.WriteString(st.Muted.Render("[ Please wait... ]"))
	case flow.CanSubmit(m.username.Value(), m.password.Value()):
		b.WriteString(st.Selected.Render(submit))
	default:
		b.WriteString(st.Muted.Render(submit))
	}
	b.WriteString("\n\n")

	if msg := flow.Error(); msg != "" {
		b.WriteString(st.Error.Render(msg) + "\n\n")
	} else if m.status != "" {
		b.WriteString(m.statusLine(st) + "\n\n")
	}
	b.WriteString(st.Muted.Render(fmt.Sprintf("tab: switch field  ctrl+t: %s instead  enter: submit  ctrl+c: quit", other)))
	return st.Border.Padding(1, 2).Render(b.String())
}

func (m *Model) renderNotes() string {
	st := m.styles()
	bodyH := m.height - 6
	if bodyH < 5 {
		bodyH = 5
	}

	sidebar := m.box(st, m.focus == focusSidebar, sidebarWidth, bodyH, m.sidebarView(st))
	list := m.box(st, m.focus == focusList, listWidth, bodyH, m.listView(st))
	editor := m.box(st, m.editorFocused(), m.content.Width(), bodyH, m.editorView(st))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbar(st),
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, list, editor),
		m.statusLine(st),
		st.Muted.Render("tab: focus  /: search  n: new  d: delete  esc: deselect  t: theme  r: reload  L: logout  q: quit"),
	)
}

func (m *Model) navbar(st styles.Styles) string {
	user := ""
	if u, ok := m.deps.Session.User(); ok {
		user = u.Username
	}
	search := m.search.View()
	return lipgloss.JoinHorizontal(lipgloss.Center,
		st.Title.Render("Notes"),
		"  ", search,
		"  ", st.Muted.Render(fmt.Sprintf("theme: %s", m.deps.Workspace.Theme())),
		"  ", st.Bold.Render(user),
	)
}

func (m *Model) box(st styles.Styles, focused bool, w, h int, body string) string {
	s := st.Border
	if focused {
		s = st.Focused
	}
	return s.Width(w).Height(h).Render(body)
}

func (m *Model) sidebarView(st styles.Styles) string {
	f := m.deps.Workspace.Filter()
	lines := make([]string, 0)
	for i, it := range m.sidebarItems() {
		if i > 0 && it.kind == itemTag && it.id == nil {
			lines = append(lines, "")
		}
		active := models.SameID(f.Tag, it.id)
		if it.kind == itemFolder {
			active = models.SameID(f.Folder, it.id)
		}
		label := it.label
		if active {
			label = st.Selected.Render(label)
		}
		lines = append(lines, cursorMark(m.focus == focusSidebar && i == m.sidebarCursor)+label)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) listView(st styles.Styles) string {
	visible := m.deps.Workspace.Visible()
	if len(visible) == 0 {
		return st.Muted.Render("No notes.")
	}
	sel, hasSel := m.deps.Workspace.Selected()
	lines := make([]string, 0, len(visible)*2)
	for i, n := range visible {
		title := n.DisplayTitle()
		if hasSel && sel.ID == n.ID {
			title = st.Selected.Render(title)
		}
		lines = append(lines,
			cursorMark(m.focus == focusList && i == m.listCursor)+title,
			"  "+st.Muted.Render(oneLine(n.Snippet(snippetRunes))),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) editorView(st styles.Styles) string {
	if m.editingID == nil {
		return st.Muted.Render("Select a note or press n to create one.")
	}
	return m.title.View() + "\n" + st.Muted.Render(strings.Repeat("─", m.title.Width)) + "\n" + m.content.View()
}

func (m *Model) statusLine(st styles.Styles) string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return st.Error.Render(m.status)
	}
	return st.Status.Render(m.status)
}

func cursorMark(on bool) string {
	if on {
		return "> "
	}
	return "  "
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
