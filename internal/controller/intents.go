package controller

import (
	"context"
	"fmt"
)

// Intent is a user request raised by a presentation surface.
type Intent interface {
	intent()
}

// SubmitIntent asks for a new note.
type SubmitIntent struct {
	Title string
	Body  string
}

// DeleteIntent asks to delete a note. The surface must have confirmed it.
type DeleteIntent struct {
	ID string
}

// ArchiveIntent asks to archive a note.
type ArchiveIntent struct {
	ID string
}

// UnarchiveIntent asks to restore an archived note.
type UnarchiveIntent struct {
	ID string
}

// ReloadIntent asks to refetch the collection.
type ReloadIntent struct{}

func (SubmitIntent) intent()    {}
func (DeleteIntent) intent()    {}
func (ArchiveIntent) intent()   {}
func (UnarchiveIntent) intent() {}
func (ReloadIntent) intent()    {}

// Dispatch routes an intent to the matching operation.
func (c *Controller) Dispatch(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case SubmitIntent:
		_, err := c.Create(ctx, in.Title, in.Body)
		return err
	case DeleteIntent:
		return c.Delete(ctx, in.ID)
	case ArchiveIntent:
		return c.Archive(ctx, in.ID)
	case UnarchiveIntent:
		return c.Unarchive(ctx, in.ID)
	case ReloadIntent:
		return c.Load(ctx)
	default:
		return fmt.Errorf("unsupported intent %T", in)
	}
}
