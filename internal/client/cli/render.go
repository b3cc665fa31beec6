package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/styles"
	"github.com/dmitrijs2005/gophnotes/internal/client/workspace"
)

// snippetRunes is how much of a note body the list shows.
const snippetRunes = 45

func renderList(w io.Writer, st styles.Styles, ws *workspace.Workspace) {
	if desc := describeFilter(ws); desc != "" {
		fmt.Fprintln(w, st.Muted.Render("Filter: "+desc))
	}

	notes := ws.Visible()
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes.")
		return
	}

	sel, hasSel := ws.Selected()
	for _, n := range notes {
		marker := " "
		title := n.DisplayTitle()
		if hasSel && sel.ID == n.ID {
			marker = "*"
			title = st.Selected.Render(title)
		}
		line := fmt.Sprintf("%s [%s] %s", marker, n.ID, title)
		if snip := oneLine(n.Snippet(snippetRunes)); snip != "" {
			line += "  " + st.Muted.Render(snip)
		}
		fmt.Fprintln(w, line)
	}
}

func renderNote(w io.Writer, st styles.Styles, ws *workspace.Workspace, n models.Note) {
	fmt.Fprintln(w, st.Bold.Render(n.DisplayTitle())+st.Muted.Render(fmt.Sprintf(" [%s]", n.ID)))
	if n.FolderID != nil {
		fmt.Fprintln(w, st.Muted.Render("Folder: "+ws.FolderName(n.FolderID)))
	}
	if len(n.Tags) > 0 {
		names := make([]string, 0, len(n.Tags))
		for _, t := range n.Tags {
			names = append(names, ws.TagName(t))
		}
		fmt.Fprintln(w, st.Muted.Render("Tags: "+strings.Join(names, ", ")))
	}
	fmt.Fprintln(w)
	if n.Content == "" {
		fmt.Fprintln(w, st.Muted.Render("(empty)"))
		return
	}
	fmt.Fprintln(w, n.Content)
}

func renderFolders(w io.Writer, st styles.Styles, ws *workspace.Workspace) {
	active := ws.Filter().Folder
	fmt.Fprintln(w, activeLine(st, active == nil, "all", "All"))
	for _, f := range ws.Folders() {
		fmt.Fprintln(w, activeLine(st, active != nil && *active == f.ID, f.ID.String(), f.Name))
	}
}

func renderTags(w io.Writer, st styles.Styles, ws *workspace.Workspace) {
	active := ws.Filter().Tag
	fmt.Fprintln(w, activeLine(st, active == nil, "all", "All"))
	for _, t := range ws.Tags() {
		fmt.Fprintln(w, activeLine(st, active != nil && *active == t.ID, t.ID.String(), t.Name))
	}
}

func activeLine(st styles.Styles, active bool, id, name string) string {
	if active {
		return fmt.Sprintf("* [%s] %s", id, st.Selected.Render(name))
	}
	return fmt.Sprintf("  [%s] %s", id, name)
}

func describeFilter(ws *workspace.Workspace) string {
	f := ws.Filter()
	var parts []string
	if f.Folder != nil {
		parts = append(parts, "folder "+ws.FolderName(f.Folder))
	}
	if f.Tag != nil {
		parts = append(parts, "tag "+ws.TagName(*f.Tag))
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.Search))
	}
	return strings.Join(parts, ", ")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
