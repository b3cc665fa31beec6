package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestFor_PicksPalette(t *testing.T) {
	dark := For(models.ThemeDark)
	light := For(models.ThemeLight)

	assert.Equal(t, lipgloss.Color("62"), dark.Title.GetBackground())
	assert.Equal(t, lipgloss.Color("25"), light.Title.GetBackground())
	assert.Equal(t, dark.Title.GetBackground(), For("unknown").Title.GetBackground())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := For(models.ThemeLight)
	assert.Contains(t, s.Selected.Render("Alpha"), "Alpha")
	assert.Contains(t, s.Error.Render("boom"), "boom")
}
