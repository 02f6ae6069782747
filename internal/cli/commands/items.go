package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/config"
	"context"
	"errors"
	"net/http"
	"net/url"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все записи" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []itemView
	if err := newClient(cfg).DoJSON(ctx, http.MethodGet, "/api/items", nil, &list); err != nil {
		return err
	}
	printList(Out, list)
	return nil
}

type itemsFilterCmd struct{}

func (itemsFilterCmd) Name() string { return "items-filter" }
func (itemsFilterCmd) Description() string {
	return "Записи в диапазоне цен (включительно), '-' — без границы"
}
func (itemsFilterCmd) Usage() string { return "items-filter <min|-> <max|->" }

func (itemsFilterCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	q := url.Values{}
	for i, key := range []string{"price_min", "price_max"} {
		if args[i] == "-" {
			continue
		}
		if _, err := parseInt(args[i]); err != nil {
			return ErrUsage
		}
		q.Set(key, args[i])
	}
	if len(q) == 0 {
		return ErrUsage
	}
	var list []itemView
	err := newClient(cfg).DoJSON(ctx, http.MethodGet, "/api/items/filter?"+q.Encode(), nil, &list)
	// сервер отвечает 404 на пустую выборку
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		list, err = nil, nil
	}
	if err != nil {
		return err
	}
	printList(Out, list)
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemsFilterCmd{})
}
