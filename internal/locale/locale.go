package locale

import (
	"fmt"
	"sort"
)

const (
	Indonesian = "id"
	English    = "en"

	Default = Indonesian
)

// Catalog holds the user facing strings of one display locale.
type Catalog struct {
	Code string

	FetchFailed     string
	CreateFailed    string
	DeleteFailed    string
	ArchiveFailed   string
	UnarchiveFailed string

	AppTitle       string
	ArchivedTitle  string
	EmptyList      string
	Loading        string
	ErrorTitle     string
	ConfirmTitle   string
	ConfirmDelete  string
	ConfirmYes     string
	ConfirmNo      string
	FormTitle      string
	FormTitleLabel string
	FormBodyLabel  string
	FormSubmit     string
	FormIncomplete string
	CreatedAt      string
	ArchivedMarker string
	Copied         string
}

var catalogs = map[string]Catalog{
	Indonesian: {
		Code:            Indonesian,
		FetchFailed:     "Gagal mengambil catatan.",
		CreateFailed:    "Gagal menambahkan catatan.",
		DeleteFailed:    "Gagal menghapus catatan.",
		ArchiveFailed:   "Gagal mengarsipkan catatan.",
		UnarchiveFailed: "Gagal membatalkan arsip catatan.",
		AppTitle:        "Notes App",
		ArchivedTitle:   "Arsip",
		EmptyList:       "Tidak ada catatan.",
		Loading:         "Memuat...",
		ErrorTitle:      "Oops...",
		ConfirmTitle:    "Apakah kamu yakin?",
		ConfirmDelete:   "Catatan ini akan dihapus secara permanen!",
		ConfirmYes:      "Ya, hapus!",
		ConfirmNo:       "Batal",
		FormTitle:       "Tambah Catatan Baru",
		FormTitleLabel:  "Judul",
		FormBodyLabel:   "Isi",
		FormSubmit:      "Tambah",
		FormIncomplete:  "Judul dan isi wajib diisi.",
		CreatedAt:       "Dibuat pada",
		ArchivedMarker:  "diarsipkan",
		Copied:          "Disalin ke clipboard",
	},
	English: {
		Code:            English,
		FetchFailed:     "Failed to fetch notes.",
		CreateFailed:    "Failed to add note.",
		DeleteFailed:    "Failed to delete note.",
		ArchiveFailed:   "Failed to archive note.",
		UnarchiveFailed: "Failed to unarchive note.",
		AppTitle:        "Notes App",
		ArchivedTitle:   "Archive",
		EmptyList:       "No notes.",
		Loading:         "Loading...",
		ErrorTitle:      "Oops...",
		ConfirmTitle:    "Are you sure?",
		ConfirmDelete:   "This note will be deleted permanently!",
		ConfirmYes:      "Yes, delete it!",
		ConfirmNo:       "Cancel",
		FormTitle:       "Add a New Note",
		FormTitleLabel:  "Title",
		FormBodyLabel:   "Body",
		FormSubmit:      "Add",
		FormIncomplete:  "Title and body are required.",
		CreatedAt:       "Created at",
		ArchivedMarker:  "archived",
		Copied:          "Copied to clipboard",
	},
}

// Lookup returns the catalog for code.
func Lookup(code string) (Catalog, error) {
	c, ok := catalogs[code]
	if !ok {
		return Catalog{}, fmt.Errorf("unsupported locale %q, choose from %v", code, Codes())
	}
	return c, nil
}

// MustLookup returns the catalog for code, falling back to the default locale.
func MustLookup(code string) Catalog {
	if c, err := Lookup(code); err == nil {
		return c
	}
	return catalogs[Default]
}

// Codes lists the supported locale codes.
func Codes() []string {
	codes := make([]string, 0, len(catalogs))
	for code := range catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
