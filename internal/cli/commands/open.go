package commands

import (
	"context"
	"fmt"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/cli/router"
	"VenuePOS/internal/config"
)

type openCmd struct{}

func (openCmd) Name() string { return "open" }
func (openCmd) Description() string {
	return "Проверить навигацию: решение route guard для указанного пути"
}
func (openCmd) Usage() string { return "open <path>" }

func (openCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	res := app.Guard.Resolve(args[0])
	switch res.Decision {
	case router.Allow:
		fmt.Fprintf(Out, "✓ %s → %s\n", args[0], res.Route.Name)
	case router.RedirectLogin:
		fmt.Fprintf(Out, "→ %s requires login\n", args[0])
	case router.Forbidden:
		fmt.Fprintf(Out, "× %s: role %q is not allowed\n", args[0], app.Session.Role())
	case router.NotFound:
		fmt.Fprintf(Out, "? %s: not found\n", args[0])
	}
	return nil
}

func init() { RegisterCmd(openCmd{}) }
