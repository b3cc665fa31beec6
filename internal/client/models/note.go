package models

// DefaultNoteTitle is the title sent when a note is created.
const DefaultNoteTitle = "Untitled Note"

type User struct {
	Username string `json:"username"`
}

// Session is the authenticated identity plus the opaque bearer token.
type Session struct {
	User  User
	Token string
}

type Note struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID *ID    `json:"folder_id"`
	Tags     []ID   `json:"tags"`
}

// HasTag reports whether tag is attached to the note.
func (n Note) HasTag(tag ID) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Snippet returns the first max runes of the content, with "..." appended
// when the content is longer.
func (n Note) Snippet(max int) string {
	r := []rune(n.Content)
	if len(r) <= max {
		return n.Content
	}
	return string(r[:max]) + "..."
}

// DisplayTitle falls back to "Untitled" for empty titles.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// NewNote is the body of POST /notes/.
type NewNote struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID *ID    `json:"folder_id"`
	Tags     []ID   `json:"tags"`
}

// NoteUpdate is the partial body of PUT /notes/{id}/. Nil fields are omitted.
type NoteUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	FolderID *ID     `json:"folder_id,omitempty"`
	Tags     []ID    `json:"tags,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.FolderID == nil && u.Tags == nil
}

type Folder struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Collections groups the three lists fetched after login.
type Collections struct {
	Notes   []Note
	Folders []Folder
	Tags    []Tag
}
