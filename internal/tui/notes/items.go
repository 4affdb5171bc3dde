package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/x/ansi"

	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/utils"
)

const excerptWidth = 60

type ListItem struct {
	note     note.Note
	messages locale.Catalog
}

func (i ListItem) Title() string {
	return i.note.Title
}

func (i ListItem) Description() string {
	description := i.messages.CreatedAt + " " + utils.FormatDate(i.note.CreatedAt)
	if i.note.Archived {
		description += " · " + i.messages.ArchivedMarker
	}

	if excerpt := excerpt(i.note.Body); excerpt != "" {
		description += "\n" + excerpt
	}

	return description
}

func (i ListItem) FilterValue() string {
	return i.note.Title + " " + i.note.Body
}

func (i ListItem) Note() note.Note {
	return i.note
}

// excerpt flattens the first lines of a body into one width-bounded line.
func excerpt(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	return ansi.Truncate(flat, excerptWidth, "…")
}

func toListItems(notes []note.Note, messages locale.Catalog) []list.Item {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, ListItem{note: n, messages: messages})
	}
	return items
}
