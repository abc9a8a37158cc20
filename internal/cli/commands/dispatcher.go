package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"VenuePOS/internal/config"
)

// Dispatch — единственная точка входа исполнения команд CLI, возвращает exit
// code процесса. Флаги к этому моменту уже разобраны (config.NewConfig), args —
// то, что осталось после них.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])

	// vpcli help [command] (и алиасы --help/-h на месте команды)
	if name == "help" || name == "--help" || name == "-h" {
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		name = args[1] // провалиться в ветку unknown command
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}
