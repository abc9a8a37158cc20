package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Список позиций" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Items.FetchItems(ctx); err != nil {
		return err
	}
	for _, it := range app.Items.Items() {
		fmt.Fprintf(Out, "%4d  %-24s %8.2f  cat=%d %s\n", it.ID, it.Name, it.Price, it.CategoryID, it.Image)
	}
	return nil
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Создать позицию (опционально с файлом изображения)"
}
func (itemAddCmd) Usage() string { return "item-add <name> <price> <category_id> [<image-file>]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return ErrUsage
	}
	catID, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return ErrUsage
	}
	item := model.Item{Name: args[0], Price: price, CategoryID: catID}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 4 {
		f, err := os.Open(args[3])
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		if err := app.Items.SaveItem(ctx, &item, f, filepath.Base(args[3])); err != nil {
			return err
		}
	} else {
		if err := app.Items.SaveItem(ctx, &item, nil, ""); err != nil {
			return err
		}
	}
	fmt.Fprintf(Out, "Created item %d (%s)\n", item.ID, item.Name)
	return nil
}

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Удалить позицию по id" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := app.Items.DeleteItem(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted item %d\n", id)
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemRmCmd{})
}
