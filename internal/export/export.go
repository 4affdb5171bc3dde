// Package export renders notes as markdown, HTML or JSON and uploads the
// result to S3.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notes/internal/note"
)

type Format string

const (
	Markdown Format = "md"
	HTML     Format = "html"
	JSON     Format = "json"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "md", "markdown":
		return Markdown, nil
	case "html", "htm":
		return HTML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q. Please choose from 'md', 'html', or 'json'", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case HTML:
		return "text/html; charset=utf-8"
	case JSON:
		return "application/json"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// Write renders notes in format f to w.
func Write(w io.Writer, notes []note.Note, f Format) error {
	switch f {
	case Markdown:
		return writeMarkdown(w, notes)
	case HTML:
		return writeHTML(w, notes)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if notes == nil {
			notes = []note.Note{}
		}
		return enc.Encode(notes)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// Render returns the rendered export.
func Render(notes []note.Note, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, notes, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeMarkdown emits one document per note: YAML front matter followed by
// the body.
func writeMarkdown(w io.Writer, notes []note.Note) error {
	for i, n := range notes {
		front, err := yaml.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to marshal front matter for %s: %w", n.ID, err)
		}

		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "---\n%s---\n\n%s\n", front, strings.TrimSpace(n.Body)); err != nil {
			return err
		}
	}
	return nil
}

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var page = template.Must(template.New("notes").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{- range .Notes}}
<article id="{{.ID}}"{{if .Archived}} class="archived"{{end}}>
<h2>{{.Title}}</h2>
<time datetime="{{.Created}}">{{.Created}}</time>
{{.Body}}
</article>
{{- end}}
</body>
</html>
`))

type pageNote struct {
	ID       string
	Title    string
	Created  string
	Archived bool
	Body     template.HTML
}

func writeHTML(w io.Writer, notes []note.Note) error {
	data := struct {
		Lang  string
		Title string
		Notes []pageNote
	}{Lang: "id", Title: "Notes"}

	for _, n := range notes {
		var body bytes.Buffer
		if err := markdownRenderer.Convert([]byte(strings.TrimSpace(n.Body)), &body); err != nil {
			return fmt.Errorf("failed to render %s: %w", n.ID, err)
		}

		created := ""
		if !n.CreatedAt.IsZero() {
			created = n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
		}

		data.Notes = append(data.Notes, pageNote{
			ID:       n.ID,
			Title:    n.Title,
			Created:  created,
			Archived: n.Archived,
			// Raw HTML in bodies is dropped by the renderer.
			Body: template.HTML(body.String()),
		})
	}

	return page.Execute(w, data)
}
