// Package models holds the records served by the dev notes backend.
package models

type Note struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *int64  `json:"folder_id"`
	Tags     []int64 `json:"tags"`
}

// NewNote is the body of POST /notes/.
type NewNote struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *int64  `json:"folder_id"`
	Tags     []int64 `json:"tags"`
}

// NoteUpdate is the body of PUT /notes/{id}/. Absent fields are left alone.
type NoteUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	FolderID *int64  `json:"folder_id"`
	Tags     []int64 `json:"tags"`
}

type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clone returns a copy that shares no memory with n.
func (n Note) Clone() Note {
	out := n
	if n.FolderID != nil {
		id := *n.FolderID
		out.FolderID = &id
	}
	out.Tags = append(make([]int64, 0, len(n.Tags)), n.Tags...)
	return out
}
