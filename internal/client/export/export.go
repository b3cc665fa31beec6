// Package export writes notes to a directory as Markdown files with YAML
// frontmatter.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/filex"
	"gopkg.in/yaml.v3"
)

const maxSlugRunes = 40

type frontmatter struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Folder string   `yaml:"folder,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

// Write creates dir if needed and writes one <id>-<slug>.md file per note.
// Folder and tag ids are resolved to names where possible. It returns the
// paths written, in note order.
func Write(dir string, notes []models.Note, folders []models.Folder, tags []models.Tag) ([]string, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}

	folderNames := make(map[models.ID]string, len(folders))
	for _, f := range folders {
		folderNames[f.ID] = f.Name
	}
	tagNames := make(map[models.ID]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	paths := make([]string, 0, len(notes))
	for _, n := range notes {
		data, err := Render(n, folderNames, tagNames)
		if err != nil {
			return paths, fmt.Errorf("render note %s: %w", n.ID, err)
		}

		path := filepath.Join(abs, FileName(n))
		if err := filex.WriteFileAtomic(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write note %s: %w", n.ID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Render formats one note. Unknown folder or tag ids are written as is.
func Render(n models.Note, folderNames, tagNames map[models.ID]string) ([]byte, error) {
	fm := frontmatter{ID: n.ID.String(), Title: n.Title}
	if n.FolderID != nil {
		fm.Folder = nameOr(folderNames, *n.FolderID)
	}
	for _, t := range n.Tags {
		fm.Tags = append(fm.Tags, nameOr(tagNames, t))
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n\n")
	buf.WriteString(n.Content)
	if n.Content != "" && !strings.HasSuffix(n.Content, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func nameOr(names map[models.ID]string, id models.ID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id.String()
}

// FileName is "<id>-<slug>.md".
func FileName(n models.Note) string {
	id := Slug(n.ID.String())
	if id == "" {
		id = "note"
	}
	return id + "-" + titleSlug(n.Title) + ".md"
}

func titleSlug(title string) string {
	s := Slug(title)
	if s == "" {
		return "untitled"
	}
	return s
}

// Slug lowercases s, keeps letters and digits and joins the rest with single
// dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	n := 0
	for _, r := range strings.ToLower(s) {
		if n >= maxSlugRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			n++
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
			n++
		}
	}
	return strings.TrimRight(b.String(), "-")
}
