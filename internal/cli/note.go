package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/zenhabits/zenhabits/internal/constants"
	"github.com/zenhabits/zenhabits/internal/storage"
)

type NoteCmd struct {
	Show   NoteShowCmd   `cmd:"" help:"Show the note for a day."`
	Save   NoteSaveCmd   `cmd:"" help:"Save the note for a day (overwrites)."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete the note for a day."`
}

func noteDate(flag string) string {
	if flag == "" {
		return time.Now().Format(constants.DateFormat)
	}
	return flag
}

type NoteShowCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteShowCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := noteDate(c.Date)
	note, err := ctx.Tracker.GetNote(sess.UserID, date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No note for %s.\n", date)
			return nil
		}
		return err
	}

	fmt.Printf("%s:\n%s\n", note.Date, note.Text)
	return nil
}

type NoteSaveCmd struct {
	Text string `arg:"" help:"Note text."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteSaveCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := noteDate(c.Date)
	if err := ctx.Tracker.SaveNote(sess.UserID, date, c.Text); err != nil {
		return err
	}

	fmt.Printf("Saved note for %s.\n", date)
	return nil
}

type NoteDeleteCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := noteDate(c.Date)
	if err := ctx.Tracker.DeleteNote(sess.UserID, date); err != nil {
		return err
	}

	fmt.Printf("Deleted note for %s.\n", date)
	return nil
}
