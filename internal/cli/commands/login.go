package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store session record" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Session.Login(ctx, args[0], args[1]); err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
			return errors.New("invalid username or password")
		}
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", app.Session.Username(), app.Session.Role())
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
