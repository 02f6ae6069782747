package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
)

type itemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Добавить запись" }
func (itemAddCmd) Usage() string       { return "item-add <name> <price> [description]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 || args[0] == "" {
		return ErrUsage
	}
	price, err := parseInt(args[1])
	if err != nil {
		return ErrUsage
	}
	p := itemPayload{Name: args[0], Price: price}
	if len(args) == 3 {
		p.Description = args[2]
	}
	var it itemView
	if err := newClient(cfg).DoJSON(ctx, http.MethodPost, "/api/items", p, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(Out, it)
	return nil
}

type itemAddTxCmd struct{}

func (itemAddTxCmd) Name() string { return "item-add-tx" }
func (itemAddTxCmd) Description() string {
	return "Добавить запись и в той же транзакции сменить цену записи update_id"
}
func (itemAddTxCmd) Usage() string {
	return "item-add-tx <name> <price> <update_id> [update_price]"
}

func (itemAddTxCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 || args[0] == "" {
		return ErrUsage
	}
	price, err := parseInt(args[1])
	if err != nil {
		return ErrUsage
	}
	updateID, err := parseID(args[2])
	if err != nil {
		return err
	}
	body := struct {
		itemPayload
		UpdateID    int64  `json:"update_id"`
		UpdatePrice *int64 `json:"update_price,omitempty"`
	}{
		itemPayload: itemPayload{Name: args[0], Price: price},
		UpdateID:    updateID,
	}
	if len(args) == 4 {
		up, err := parseInt(args[3])
		if err != nil {
			return ErrUsage
		}
		body.UpdatePrice = &up
	}
	var it itemView
	if err := newClient(cfg).DoJSON(ctx, http.MethodPost, "/api/items/create_v2", body, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(Out, it)
	fmt.Fprintf(Out, "Price of item %d updated\n", updateID)
	return nil
}

func init() {
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemAddTxCmd{})
}
