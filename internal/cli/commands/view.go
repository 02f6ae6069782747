package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/config"
	"fmt"
	"io"
	"strconv"
	"time"
)

// itemView — item в том виде, в каком его отдаёт сервер.
type itemView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, cfg.APIKey)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func printItem(w io.Writer, it itemView) {
	fmt.Fprintf(w, "  id:          %d\n", it.ID)
	fmt.Fprintf(w, "  name:        %s\n", it.Name)
	fmt.Fprintf(w, "  description: %s\n", it.Description)
	fmt.Fprintf(w, "  price:       %d\n", it.Price)
	fmt.Fprintf(w, "  created:     %s\n", it.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "  updated:     %s\n", it.UpdatedAt.Format(time.RFC3339))
}

func printList(w io.Writer, list []itemView) {
	if len(list) == 0 {
		fmt.Fprintln(w, "Нет записей")
		return
	}
	for _, it := range list {
		fmt.Fprintf(w, "- %d  name=%s  price=%d\n", it.ID, it.Name, it.Price)
	}
	fmt.Fprintf(w, "Всего: %d\n", len(list))
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func itemPath(id int64) string {
	return "/api/items/" + strconv.FormatInt(id, 10)
}
