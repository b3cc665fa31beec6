package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// fakeClient implements client.Client for the service tests.
type fakeClient struct {
	mu sync.Mutex

	LoginToken  string
	LoginErr    error
	SignupToken string
	SignupErr   error

	Notes      []models.Note
	NotesErr   error
	Folders    []models.Folder
	FoldersErr error
	Tags       []models.Tag
	TagsErr    error

	CreateRet models.Note
	CreateErr error
	UpdateRet models.Note
	UpdateErr error
	DeleteErr error

	// block, when set, is waited on by Login before it returns.
	block chan struct{}

	LoginCalls  int
	SignupCalls int
	LastUser    string
	LastPass    string
	LastCreate  models.NewNote
	LastUpdate  models.NoteUpdate
	LastID      models.ID
	Calls       []string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

func (f *fakeClient) Login(ctx context.Context, u, p string) (string, error) {
	f.record("login")
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.LoginCalls++
	f.LastUser, f.LastPass = u, p
	f.mu.Unlock()
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, u, p string) (string, error) {
	f.record("signup")
	f.mu.Lock()
	f.SignupCalls++
	f.LastUser, f.LastPass = u, p
	f.mu.Unlock()
	return f.SignupToken, f.SignupErr
}

func (f *fakeClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	f.record("notes")
	return f.Notes, f.NotesErr
}

func (f *fakeClient) ListFolders(ctx context.Context) ([]models.Folder, error) {
	f.record("folders")
	return f.Folders, f.FoldersErr
}

func (f *fakeClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	f.record("tags")
	return f.Tags, f.TagsErr
}

func (f *fakeClient) CreateNote(ctx context.Context, n models.NewNote) (models.Note, error) {
	f.record("create")
	f.LastCreate = n
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateNote(ctx context.Context, id models.ID, u models.NoteUpdate) (models.Note, error) {
	f.record("update")
	f.LastID, f.LastUpdate = id, u
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteNote(ctx context.Context, id models.ID) error {
	f.record("delete")
	f.LastID = id
	return f.DeleteErr
}
