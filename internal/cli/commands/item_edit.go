package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить поля записи: name|description|price"
}
func (itemEditCmd) Usage() string {
	return "item-edit <id> <field>=<value> [<field>=<value> ...]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	patch := make(map[string]any, len(args)-1)
	for _, kv := range args[1:] {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return ErrUsage
		}
		switch field {
		case "name", "description":
			patch[field] = value
		case "price":
			p, err := parseInt(value)
			if err != nil {
				return ErrUsage
			}
			patch[field] = p
		default:
			return ErrUsage
		}
	}

	var it itemView
	if err := newClient(cfg).DoJSON(ctx, http.MethodPatch, itemPath(id), patch, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(Out, it)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
