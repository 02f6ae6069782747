package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Показать запись по id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var it itemView
	if err := newClient(cfg).DoJSON(ctx, http.MethodGet, itemPath(id), nil, &it); err != nil {
		return err
	}
	printItem(Out, it)
	return nil
}

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить запись по id" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := newClient(cfg).DoJSON(ctx, http.MethodDelete, itemPath(id), nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s (id=%d)\n", resp.Message, id)
	return nil
}

func init() {
	RegisterCmd(itemGetCmd{})
	RegisterCmd(itemDeleteCmd{})
}
