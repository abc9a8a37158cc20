package commands

import (
	"context"
	"fmt"
	"strconv"

	"VenuePOS/internal/cli/bootstrap"
	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
)

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "Список пользователей (требует роль Manager)" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Users.FetchUsers(ctx); err != nil {
		return err
	}
	for _, u := range app.Users.Users() {
		fmt.Fprintf(Out, "%4d  %-20s %s\n", u.ID, u.Username, u.Role)
	}
	return nil
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Создать пользователя" }
func (userAddCmd) Usage() string       { return "user-add <username> <password> <role>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	role := model.Role(args[2])
	if !model.ValidRole(role) {
		return fmt.Errorf("unknown role %q", args[2])
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	u := model.User{Username: args[0], Role: role}
	if err := app.Users.SaveUser(ctx, &u, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created user %d (%s)\n", u.ID, u.Username)
	return nil
}

type userRoleCmd struct{}

func (userRoleCmd) Name() string        { return "user-role" }
func (userRoleCmd) Description() string { return "Сменить роль пользователя" }
func (userRoleCmd) Usage() string       { return "user-role <id> <role>" }

func (userRoleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	role := model.Role(args[1])
	if !model.ValidRole(role) {
		return fmt.Errorf("unknown role %q", args[1])
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	u := model.User{ID: id, Role: role}
	if err := app.Users.UpdateUser(ctx, &u); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User %d is now %s\n", id, role)
	return nil
}

type userRmCmd struct{}

func (userRmCmd) Name() string        { return "user-rm" }
func (userRmCmd) Description() string { return "Удалить пользователя по id" }
func (userRmCmd) Usage() string       { return "user-rm <id>" }

func (userRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	if err := app.Users.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted user %d\n", id)
	return nil
}

func init() {
	RegisterCmd(usersCmd{})
	RegisterCmd(userAddCmd{})
	RegisterCmd(userRoleCmd{})
	RegisterCmd(userRmCmd{})
}
