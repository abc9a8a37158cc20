package commands

import (
	"context"
	"fmt"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
)

type printersCmd struct{}

func (printersCmd) Name() string        { return "printers" }
func (printersCmd) Description() string { return "Список принтеров" }
func (printersCmd) Usage() string       { return "printers" }

func (printersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Devices.FetchPrinters(ctx); err != nil {
		return err
	}
	for _, p := range app.Devices.Printers() {
		fmt.Fprintf(Out, "%4d  %-20s %-15s %s\n", p.ID, p.Name, p.IPAddr, p.Location)
	}
	return nil
}

type printerAddCmd struct{}

func (printerAddCmd) Name() string        { return "printer-add" }
func (printerAddCmd) Description() string { return "Создать принтер" }
func (printerAddCmd) Usage() string       { return "printer-add <name> [<ip> [<location>]]" }

func (printerAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	p := model.Printer{Name: args[0]}
	if len(args) >= 2 {
		p.IPAddr = args[1]
	}
	if len(args) == 3 {
		p.Location = args[2]
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Devices.SavePrinter(ctx, &p); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created printer %d (%s)\n", p.ID, p.Name)
	return nil
}

type printerRmCmd struct{}

func (printerRmCmd) Name() string        { return "printer-rm" }
func (printerRmCmd) Description() string { return "Удалить принтер по id" }
func (printerRmCmd) Usage() string       { return "printer-rm <id>" }

func (printerRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Devices.DeletePrinter(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted printer %d\n", id)
	return nil
}

func init() {
	RegisterCmd(printersCmd{})
	RegisterCmd(printerAddCmd{})
	RegisterCmd(printerRmCmd{})
}
