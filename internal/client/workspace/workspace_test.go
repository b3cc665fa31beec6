package workspace

import (
	"testing"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func alphaBravo() *Workspace {
	w := New(models.ThemeDark)
	w.SetCollections(models.Collections{
		Notes: []models.Note{
			{ID: "1", Title: "Alpha", Content: "first"},
			{ID: "2", Title: "Bravo", Content: "second"},
		},
	})
	return w
}

func TestWorkspace_SearchScenario(t *testing.T) {
	w := alphaBravo()

	w.SetSearch("alpha")
	assert.Equal(t, []string{"Alpha"}, titles(w.Visible()))

	w.SetSearch("")
	assert.Equal(t, []string{"Alpha", "Bravo"}, titles(w.Visible()))
}

func TestWorkspace_FolderAndTagFilters(t *testing.T) {
	w := New(models.ThemeDark)
	w.SetCollections(models.Collections{
		Notes: []models.Note{
			{ID: "1", Title: "a", FolderID: models.IDPtr("10"), Tags: []models.ID{"t1"}},
			{ID: "2", Title: "b", FolderID: models.IDPtr("20"), Tags: []models.ID{"t1", "t2"}},
			{ID: "3", Title: "c"},
		},
	})

	w.SetFolder(models.IDPtr("10"))
	assert.Equal(t, []string{"a"}, titles(w.Visible()))

	w.SetFolder(nil)
	w.SetTag(models.IDPtr("t2"))
	assert.Equal(t, []string{"b"}, titles(w.Visible()))

	w.SetFolder(models.IDPtr("10"))
	assert.Empty(t, w.Visible())

	w.SetFolder(nil)
	w.SetTag(nil)
	assert.Len(t, w.Visible(), 3)
}

func TestWorkspace_CreatePrependsAndSelects(t *testing.T) {
	w := alphaBravo()
	w.ApplyCreated(models.Note{ID: "99", Title: models.DefaultNoteTitle})

	visible := w.Visible()
	require.NotEmpty(t, visible)
	assert.Equal(t, models.ID("99"), visible[0].ID)

	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, models.ID("99"), sel.ID)
}

func TestWorkspace_DeleteAbsentIsNoop(t *testing.T) {
	w := alphaBravo()
	before := append([]models.Note(nil), w.Notes()...)

	w.ApplyDeleted("404")

	if diff := cmp.Diff(before, w.Notes()); diff != "" {
		t.Fatalf("collection changed (-before +after):\n%s", diff)
	}
}

func TestWorkspace_DeleteRemovesAndClearsSelection(t *testing.T) {
	w := alphaBravo()
	require.True(t, w.Select("1"))

	w.ApplyDeleted("1")

	assert.Equal(t, []string{"Bravo"}, titles(w.Notes()))
	_, ok := w.Selected()
	assert.False(t, ok)
}

func TestWorkspace_DeleteOtherKeepsSelection(t *testing.T) {
	w := alphaBravo()
	require.True(t, w.Select("2"))

	w.ApplyDeleted("1")

	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bravo", sel.Title)
}

func TestWorkspace_DeleteDoesNotAliasPreviousSlice(t *testing.T) {
	w := alphaBravo()
	old := w.Notes()
	w.ApplyDeleted("1")
	assert.Equal(t, []string{"Alpha", "Bravo"}, titles(old))
}

func TestWorkspace_UpdateReplacesInPlace(t *testing.T) {
	w := alphaBravo()
	tk := w.BeginUpdate("1")

	ok := w.ApplyUpdated(tk, models.Note{ID: "1", Title: "Alpha v2", Content: "first"})
	require.True(t, ok)
	assert.Equal(t, []string{"Alpha v2", "Bravo"}, titles(w.Notes()))
}

func TestWorkspace_StaleUpdateDropped(t *testing.T) {
	w := alphaBravo()
	older := w.BeginUpdate("1")
	newer := w.BeginUpdate("1")

	require.True(t, w.ApplyUpdated(newer, models.Note{ID: "1", Title: "newer"}))
	assert.False(t, w.ApplyUpdated(older, models.Note{ID: "1", Title: "older"}))

	n, _ := w.Note("1")
	assert.Equal(t, "newer", n.Title)
}

func TestWorkspace_TicketsArePerNote(t *testing.T) {
	w := alphaBravo()
	t1 := w.BeginUpdate("1")
	t2 := w.BeginUpdate("2")

	require.True(t, w.ApplyUpdated(t2, models.Note{ID: "2", Title: "B"}))
	require.True(t, w.ApplyUpdated(t1, models.Note{ID: "1", Title: "A"}))
	assert.Equal(t, []string{"A", "B"}, titles(w.Notes()))
}

func TestWorkspace_UpdateAfterDeleteDropped(t *testing.T) {
	w := alphaBravo()
	tk := w.BeginUpdate("1")
	w.ApplyDeleted("1")

	assert.False(t, w.ApplyUpdated(tk, models.Note{ID: "1", Title: "ghost"}))
	assert.Equal(t, []string{"Bravo"}, titles(w.Notes()))
}

func TestWorkspace_ThemeToggleTwiceIsIdentity(t *testing.T) {
	for _, start := range []models.Theme{models.ThemeDark, models.ThemeLight} {
		w := New(start)
		w.ToggleTheme()
		assert.NotEqual(t, start, w.Theme())
		w.ToggleTheme()
		assert.Equal(t, start, w.Theme())
	}
}

func TestWorkspace_DefaultThemeIsDark(t *testing.T) {
	assert.Equal(t, models.ThemeDark, New("").Theme())
}

func TestWorkspace_SelectUnknown(t *testing.T) {
	w := alphaBravo()
	assert.False(t, w.Select("nope"))
	_, ok := w.Selected()
	assert.False(t, ok)
}

func TestWorkspace_SetCollectionsDropsVanishedSelection(t *testing.T) {
	w := alphaBravo()
	require.True(t, w.Select("2"))

	w.SetCollections(models.Collections{Notes: []models.Note{{ID: "1", Title: "Alpha"}}})
	_, ok := w.Selected()
	assert.False(t, ok)
}

func TestWorkspace_ResetKeepsTheme(t *testing.T) {
	w := alphaBravo()
	w.ToggleTheme()
	w.SetSearch("x")
	w.Select("1")

	w.Reset()

	assert.Empty(t, w.Notes())
	assert.Equal(t, models.Filter{}, w.Filter())
	assert.Equal(t, models.ThemeLight, w.Theme())
	_, ok := w.Selected()
	assert.False(t, ok)
}

func TestWorkspace_UpdateFromBeforeResetDropped(t *testing.T) {
	w := alphaBravo()
	before := w.BeginUpdate("1")

	w.Reset()
	w.SetCollections(models.Collections{Notes: []models.Note{{ID: "1", Title: "Alpha"}}})

	assert.False(t, w.ApplyUpdated(before, models.Note{ID: "1", Title: "from last session"}))
	n, _ := w.Note("1")
	assert.Equal(t, "Alpha", n.Title)

	after := w.BeginUpdate("1")
	assert.True(t, w.ApplyUpdated(after, models.Note{ID: "1", Title: "Alpha v2"}))
}

func TestWorkspace_Names(t *testing.T) {
	w := New(models.ThemeDark)
	w.SetCollections(models.Collections{
		Folders: []models.Folder{{ID: "1", Name: "Work"}},
		Tags:    []models.Tag{{ID: "2", Name: "urgent"}},
	})

	assert.Equal(t, "Work", w.FolderName(models.IDPtr("1")))
	assert.Equal(t, "7", w.FolderName(models.IDPtr("7")))
	assert.Equal(t, "", w.FolderName(nil))
	assert.Equal(t, "urgent", w.TagName("2"))
	assert.Equal(t, "9", w.TagName("9"))
}
