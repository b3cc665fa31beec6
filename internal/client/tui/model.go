// Package tui is the full-screen front end of the notes client, built on
// bubbletea. It renders the workspace and the session; network calls run as
// tea.Cmds and report back as messages, and all state changes happen in
// Update.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophnotes/internal/client/app"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/dmitrijs2005/gophnotes/internal/client/workspace"
)

type view int

const (
	authView view = iota
	notesView
)

type focus int

const (
	focusSidebar focus = iota
	focusList
	focusTitle
	focusContent
	focusSearch
)

// authField is the focused input of the auth form.
type authField int

const (
	fieldUsername authField = iota
	fieldPassword
)

// Messages produced by commands.
type (
	sessionMsg struct {
		event session.Event
	}
	sessionLoadedMsg struct {
		err error
	}
	authDoneMsg struct {
		err error
	}
	loadedMsg struct {
		collections models.Collections
	}
	createdMsg struct {
		note models.Note
		err  error
	}
	updatedMsg struct {
		ticket workspace.Ticket
		note   models.Note
		err    error
	}
	deletedMsg struct {
		id  models.ID
		err error
	}
)

type Model struct {
	ctx  context.Context
	deps *app.Deps

	view  view
	focus focus

	username    textinput.Model
	password    textinput.Model
	authField   authField
	authPending bool

	search        textinput.Model
	sidebarCursor int
	listCursor    int

	title     textinput.Model
	content   textarea.Model
	editingID *models.ID

	status    string
	statusErr bool

	width  int
	height int
}

// New builds the model. Session events must be forwarded to the program as
// SessionMsg values; Run does that.
func New(ctx context.Context, d *app.Deps) *Model {
	m := &Model{
		ctx:      ctx,
		deps:     d,
		username: newInput("Username", 64),
		password: newInput("Password", 128),
		search:   newInput("Search notes", 128),
		title:    newInput("Title", 256),
		content:  textarea.New(),
		width:    100,
		height:   30,
	}
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '•'
	m.search.Prompt = "/ "

	m.content.Placeholder = "Your note..."
	m.content.ShowLineNumbers = false
	m.content.CharLimit = 0
	m.content.MaxHeight = 0
	m.content.Cursor.SetMode(cursor.CursorStatic)

	m.username.Focus()
	m.layout()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// SessionMsg wraps a session event for delivery to the program.
func SessionMsg(e session.Event) tea.Msg {
	return sessionMsg{event: e}
}

// Init restores a saved session in the background.
func (m *Model) Init() tea.Cmd {
	return loadSession(m.ctx, m.deps)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.view == authView {
			return m.updateAuth(msg)
		}
		return m.updateNotes(msg)

	case sessionLoadedMsg:
		if msg.err != nil {
			m.setError("Could not read the saved session: " + msg.err.Error())
		}
		return m, nil

	case sessionMsg:
		return m.handleSession(msg.event)

	case authDoneMsg:
		m.authPending = false
		if msg.err != nil {
			m.setError(m.deps.Auth.Error())
		}
		return m, nil

	case loadedMsg:
		m.deps.Workspace.SetCollections(msg.collections)
		m.clampCursors()
		m.syncEditor()
		m.setInfo("Loaded %d notes.", len(msg.collections.Notes))
		return m, nil

	case createdMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.deps.Workspace.ApplyCreated(msg.note)
		m.listCursor = m.indexOfVisible(msg.note.ID)
		m.syncEditor()
		m.setInfo("Created %s.", msg.note.DisplayTitle())
		return m, nil

	case updatedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		if m.deps.Workspace.ApplyUpdated(msg.ticket, msg.note) {
			if !m.editorFocused() {
				m.syncEditor()
			}
			m.setInfo("Saved.")
		}
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.deps.Workspace.ApplyDeleted(msg.id)
		m.clampCursors()
		m.syncEditor()
		m.setInfo("Deleted.")
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSession(e session.Event) (tea.Model, tea.Cmd) {
	switch e {
	case session.EventEstablished:
		m.view = notesView
		m.authPending = false
		m.password.SetValue("")
		m.username.Blur()
		m.password.Blur()
		m.setFocus(focusList)
		m.status = ""
		return m, loadCollections(m.ctx, m.deps)

	case session.EventCleared:
		m.deps.Workspace.Reset()
		m.view = authView
		m.editingID = nil
		m.search.SetValue("")
		m.sidebarCursor, m.listCursor = 0, 0
		m.authField = fieldUsername
		m.username.Focus()
		m.setInfo("Logged out.")
	}
	return m, nil
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setInfo(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}
