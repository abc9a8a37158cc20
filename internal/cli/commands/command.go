// Package commands содержит подкоманды vpcli и их реестр.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"VenuePOS/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах: диспетчер печатает
// usage команды вместо текста ошибки.
var ErrUsage = errors.New("usage")

// Out — общий writer для вывода CLI. Тесты подменяют его буфером.
var Out io.Writer = os.Stdout

// Command — одна подкоманда vpcli.
type Command interface {
	// Name — имя, как его вводит пользователь, например "login".
	Name() string
	// Description — короткое описание для help.
	Description() string
	// Usage — точная строка использования, например "login <username> <password>".
	Usage() string
	// Run выполняет команду; args — аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// RegisterCmd добавляет команду в реестр; вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get возвращает команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает все команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает help по всем командам. Ширина колонки usage
// подгоняется под самую длинную строку, чтобы описания выравнивались.
func FormatGlobalUsage() string {
	cmds := List()
	width := 0
	for _, c := range cmds {
		if n := len(c.Usage()); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("VenuePOS CLI\n")
	b.WriteString("\nUsage:\n")
	b.WriteString("  vpcli [--base-url <host:port>] <command> [args]\n")
	b.WriteString("\nCommands:\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Usage(), c.Description())
	}
	return b.String()
}
