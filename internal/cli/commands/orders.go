package commands

import (
	"context"
	"fmt"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
)

type ordersCmd struct{}

func (ordersCmd) Name() string        { return "orders" }
func (ordersCmd) Description() string { return "Список заказов" }
func (ordersCmd) Usage() string       { return "orders" }

func (ordersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Orders.FetchOrders(ctx); err != nil {
		return err
	}
	for _, o := range app.Orders.Orders() {
		fmt.Fprintf(Out, "%4d  room=%d %-8s %8.2f  %s\n", o.ID, o.RoomID, o.Status, o.Total, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

type orderShowCmd struct{}

func (orderShowCmd) Name() string        { return "order-show" }
func (orderShowCmd) Description() string { return "Показать заказ вместе со строками" }
func (orderShowCmd) Usage() string       { return "order-show <id>" }

func (orderShowCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	order, err := app.Orders.FetchOrderByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Order %d: room=%d status=%s total=%.2f\n", order.ID, order.RoomID, order.Status, order.Total)

	items, err := app.Orders.FetchItemsByOrderID(ctx, id)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Fprintf(Out, "  item=%d x%d @ %.2f\n", it.ItemID, it.Quantity, it.Price)
	}
	return nil
}

type orderRmCmd struct{}

func (orderRmCmd) Name() string        { return "order-rm" }
func (orderRmCmd) Description() string { return "Удалить заказ по id" }
func (orderRmCmd) Usage() string       { return "order-rm <id>" }

func (orderRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := app.Orders.DeleteOrder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted order %d\n", id)
	return nil
}

func init() {
	RegisterCmd(ordersCmd{})
	RegisterCmd(orderShowCmd{})
	RegisterCmd(orderRmCmd{})
}
