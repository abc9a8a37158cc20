package commands

import (
	"context"
	"fmt"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
)

type roomsCmd struct{}

func (roomsCmd) Name() string        { return "rooms" }
func (roomsCmd) Description() string { return "Список помещений" }
func (roomsCmd) Usage() string       { return "rooms" }

func (roomsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Devices.FetchRooms(ctx); err != nil {
		return err
	}
	for _, r := range app.Devices.Rooms() {
		fmt.Fprintf(Out, "%4d  %-20s floor=%d cap=%d\n", r.ID, r.Name, r.Floor, r.Capacity)
	}
	return nil
}

type roomAddCmd struct{}

func (roomAddCmd) Name() string        { return "room-add" }
func (roomAddCmd) Description() string { return "Создать помещение" }
func (roomAddCmd) Usage() string       { return "room-add <name> [<floor> [<capacity>]]" }

func (roomAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	room := model.Room{Name: args[0]}
	if len(args) >= 2 {
		f, err := strconv.Atoi(args[1])
		if err != nil {
			return ErrUsage
		}
		room.Floor = f
	}
	if len(args) == 3 {
		c, err := strconv.Atoi(args[2])
		if err != nil {
			return ErrUsage
		}
		room.Capacity = c
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Devices.SaveRoom(ctx, &room); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created room %d (%s)\n", room.ID, room.Name)
	return nil
}

type roomRmCmd struct{}

func (roomRmCmd) Name() string        { return "room-rm" }
func (roomRmCmd) Description() string { return "Удалить помещение по id" }
func (roomRmCmd) Usage() string       { return "room-rm <id>" }

func (roomRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := app.Devices.DeleteRoom(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted room %d\n", id)
	return nil
}

func init() {
	RegisterCmd(roomsCmd{})
	RegisterCmd(roomAddCmd{})
	RegisterCmd(roomRmCmd{})
}
