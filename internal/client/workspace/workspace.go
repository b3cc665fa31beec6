// Package workspace holds the state of a signed-in client: the loaded
// collections, the active filter, the selected note and the theme. It also
// reconciles server responses to note mutations with that state.
//
// A Workspace is not safe for concurrent use. The REPL and the TUI only touch
// it from their event loop.
package workspace

import "github.com/dmitrijs2005/gophnotes/internal/client/models"

// Ticket identifies one update request for a note. Responses are applied in
// ticket order; a response whose ticket is older than one already applied,
// or than a delete of the same note, is dropped.
type Ticket struct {
	ID  models.ID
	seq uint64
}

type Workspace struct {
	notes   []models.Note
	folders []models.Folder
	tags    []models.Tag

	filter   models.Filter
	selected *models.ID
	theme    models.Theme

	seq     uint64
	floor   uint64 // tickets at or below floor predate the last Reset
	applied map[models.ID]uint64
	deleted map[models.ID]uint64
}

func New(theme models.Theme) *Workspace {
	if theme == "" {
		theme = models.ThemeDark
	}
	return &Workspace{
		theme:   theme,
		applied: make(map[models.ID]uint64),
		deleted: make(map[models.ID]uint64),
	}
}

// SetCollections replaces all three collections. The selection is kept only
// if the selected note is still present.
func (w *Workspace) SetCollections(c models.Collections) {
	w.notes = append([]models.Note(nil), c.Notes...)
	w.folders = append([]models.Folder(nil), c.Folders...)
	w.tags = append([]models.Tag(nil), c.Tags...)

	if w.selected != nil && w.indexOf(*w.selected) < 0 {
		w.selected = nil
	}
}

func (w *Workspace) Notes() []models.Note     { return w.notes }
func (w *Workspace) Folders() []models.Folder { return w.folders }
func (w *Workspace) Tags() []models.Tag       { return w.tags }
func (w *Workspace) Filter() models.Filter    { return w.filter }
func (w *Workspace) Theme() models.Theme      { return w.theme }

// Visible applies the current filter. It is recomputed on every call.
func (w *Workspace) Visible() []models.Note {
	return w.filter.Apply(w.notes)
}

// Note looks a note up by id among all notes, filtered or not.
func (w *Workspace) Note(id models.ID) (models.Note, bool) {
	i := w.indexOf(id)
	if i < 0 {
		return models.Note{}, false
	}
	return w.notes[i], true
}

func (w *Workspace) Selected() (models.Note, bool) {
	if w.selected == nil {
		return models.Note{}, false
	}
	return w.Note(*w.selected)
}

// Select makes id the selected note. It reports false, leaving the selection
// unchanged, when there is no such note.
func (w *Workspace) Select(id models.ID) bool {
	if w.indexOf(id) < 0 {
		return false
	}
	w.selected = models.IDPtr(id)
	return true
}

func (w *Workspace) ClearSelection() {
	w.selected = nil
}

// SetFolder filters by folder; nil means all folders.
func (w *Workspace) SetFolder(id *models.ID) {
	w.filter.Folder = copyID(id)
}

// SetTag filters by tag; nil means all tags.
func (w *Workspace) SetTag(id *models.ID) {
	w.filter.Tag = copyID(id)
}

func (w *Workspace) SetSearch(term string) {
	w.filter.Search = term
}

func (w *Workspace) ToggleTheme() models.Theme {
	w.theme = w.theme.Toggle()
	return w.theme
}

func (w *Workspace) SetTheme(t models.Theme) {
	w.theme = t
}

// ApplyCreated puts a newly created note first and selects it.
func (w *Workspace) ApplyCreated(n models.Note) {
	w.notes = append([]models.Note{n}, w.notes...)
	w.selected = models.IDPtr(n.ID)
}

// BeginUpdate issues a ticket for an update request about to be sent.
func (w *Workspace) BeginUpdate(id models.ID) Ticket {
	w.seq++
	return Ticket{ID: id, seq: w.seq}
}

// ApplyUpdated replaces the note of the ticket with the server's version, in
// place. It reports false when the response was dropped: the ticket is stale,
// the note was deleted meanwhile or is no longer present.
func (w *Workspace) ApplyUpdated(t Ticket, n models.Note) bool {
	if t.seq <= w.floor || t.seq <= w.applied[t.ID] || t.seq <= w.deleted[t.ID] {
		return false
	}
	i := w.indexOf(t.ID)
	if i < 0 {
		return false
	}
	w.notes[i] = n
	w.applied[t.ID] = t.seq
	if n.ID != t.ID {
		w.applied[n.ID] = t.seq
		if w.selected != nil && *w.selected == t.ID {
			w.selected = models.IDPtr(n.ID)
		}
	}
	return true
}

// ApplyDeleted removes the note, clears the selection if it pointed at it and
// invalidates outstanding update tickets for it. Unknown ids are a no-op on
// the collection.
func (w *Workspace) ApplyDeleted(id models.ID) {
	w.seq++
	w.deleted[id] = w.seq

	if w.selected != nil && *w.selected == id {
		w.selected = nil
	}

	i := w.indexOf(id)
	if i < 0 {
		return
	}
	w.notes = append(w.notes[:i:i], w.notes[i+1:]...)
}

// Reset drops everything loaded for a session. The theme is kept, and the
// ticket counter keeps counting so that responses to requests sent before the
// reset are dropped.
func (w *Workspace) Reset() {
	seq := w.seq
	*w = *New(w.theme)
	w.seq = seq
	w.floor = seq
}

// FolderName resolves a folder id for display.
func (w *Workspace) FolderName(id *models.ID) string {
	if id == nil {
		return ""
	}
	for _, f := range w.folders {
		if f.ID == *id {
			return f.Name
		}
	}
	return id.String()
}

func (w *Workspace) TagName(id models.ID) string {
	for _, t := range w.tags {
		if t.ID == id {
			return t.Name
		}
	}
	return id.String()
}

func (w *Workspace) indexOf(id models.ID) int {
	for i, n := range w.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func copyID(id *models.ID) *models.ID {
	if id == nil {
		return nil
	}
	return models.IDPtr(*id)
}
