package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/zenhabits/zenhabits/internal/storage"
)

type RegisterCmd struct {
	Username string `arg:"" optional:"" help:"Account username."`
	Email    string `help:"Account email address."`
	Password string `help:"Account password (prompted when omitted)."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Prompt for anything not supplied on the command line
	if c.Username == "" || c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username),
				huh.NewInput().
					Title("Email").
					Value(&c.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	userID, err := ctx.Tracker.Register(c.Username, c.Email, c.Password)
	if err != nil {
		if storage.IsConflict(err) {
			return fmt.Errorf("registration failed: %v", err)
		}
		return err
	}

	fmt.Printf("✓ Registered %s (user %d). Run 'zenhabits login' to start.\n", c.Username, userID)
	return nil
}

type LoginCmd struct {
	Username string `arg:"" optional:"" help:"Account username."`
	Password string `help:"Account password (prompted when omitted)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Username == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	user, err := ctx.Tracker.Login(c.Username, c.Password)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}

	if _, err := ctx.Sessions.Begin(user.ID, user.Username); err != nil {
		return err
	}

	fmt.Printf("✓ Logged in as %s\n", user.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Sessions.End(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	fmt.Printf("%s (user %d), logged in since %s\n", sess.Username, sess.UserID, sess.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
