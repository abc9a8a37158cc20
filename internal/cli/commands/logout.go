package commands

import (
	"context"
	"fmt"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Очистить сессию и удалить персистентную запись" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Session.ClearUser(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
