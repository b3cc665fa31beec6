// Package models defines the client-side records exchanged with the notes API
// (users, notes, folders, tags) and the pure view logic over them: the note
// filter and the colour theme.
package models
