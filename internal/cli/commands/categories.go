package commands

import (
	"context"
	"fmt"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "Список категорий" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Items.FetchCategories(ctx); err != nil {
		return err
	}
	for _, c := range app.Items.Categories() {
		fmt.Fprintf(Out, "%4d  %-24s %s\n", c.ID, c.Name, c.Image)
	}
	return nil
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Создать категорию" }
func (categoryAddCmd) Usage() string       { return "category-add <name>" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	c := model.Category{Name: args[0]}
	if err := app.Items.SaveCategory(ctx, &c, nil, ""); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created category %d (%s)\n", c.ID, c.Name)
	return nil
}

type categoryRmCmd struct{}

func (categoryRmCmd) Name() string        { return "category-rm" }
func (categoryRmCmd) Description() string { return "Удалить категорию по id" }
func (categoryRmCmd) Usage() string       { return "category-rm <id>" }

func (categoryRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := app.Items.DeleteCategory(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted category %d\n", id)
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryAddCmd{})
	RegisterCmd(categoryRmCmd{})
}
