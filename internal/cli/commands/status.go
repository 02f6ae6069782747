package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Проверить, что сервер отвечает"
}
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var resp struct {
		OK string `json:"ok"`
	}
	if err := newClient(cfg).DoJSON(ctx, http.MethodGet, "/", nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Status: %s (%s)\n", resp.OK, cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
