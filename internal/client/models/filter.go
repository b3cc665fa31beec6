package models

import "strings"

// Filter narrows the note list. A nil Folder or Tag and an empty Search match
// everything.
type Filter struct {
	Folder *ID
	Tag    *ID
	Search string
}

// Match reports whether n passes all three predicates.
func (f Filter) Match(n Note) bool {
	if f.Folder != nil && (n.FolderID == nil || *n.FolderID != *f.Folder) {
		return false
	}
	if f.Tag != nil && !n.HasTag(*f.Tag) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(n.Title+n.Content), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply returns the matching notes in their original order. The input slice
// is not modified.
func (f Filter) Apply(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}
