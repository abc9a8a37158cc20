package commands

import (
	"context"
	"fmt"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show current session (restored from disk)" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Session.IsAuthenticated() {
		fmt.Fprintln(Out, "No active session")
		return nil
	}
	u := app.Session.CurrentUser()
	fmt.Fprintf(Out, "id:       %d\n", u.ID)
	fmt.Fprintf(Out, "username: %s\n", u.Username)
	fmt.Fprintf(Out, "role:     %s\n", u.Role)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
