package handlers

import (
	"Catalog/internal/model"
	"Catalog/internal/service"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в сообщениях об ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ItemSchema тело POST /items. description обязателен, но может быть пустой строкой.
type ItemSchema struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Price       *int64  `json:"price" validate:"required"`
}

func (s ItemSchema) toNewItem() service.NewItem {
	return service.NewItem{Name: s.Name, Description: *s.Description, Price: *s.Price}
}

// ItemTxSchema тело POST /items/create_v2: новый item плюс цель обновления цены.
type ItemTxSchema struct {
	ItemSchema
	UpdateID    int64  `json:"update_id" validate:"required,gt=0"`
	UpdatePrice *int64 `json:"update_price"`
}

func (s ItemTxSchema) price() int64 {
	if s.UpdatePrice == nil {
		return service.DefaultTxPrice
	}
	return *s.UpdatePrice
}

// ItemPatch тело PUT/PATCH: любое подмножество полей, null и отсутствие означают "не менять".
type ItemPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}

func (p ItemPatch) toService() service.ItemPatch {
	return service.ItemPatch{Name: p.Name, Description: p.Description, Price: p.Price}
}

// ItemResponse представление item в ответах.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toItemResponse(it *model.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItemResponses(items []model.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

// validationMessage превращает ошибку валидатора в короткое сообщение для клиента.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", fe.Field())
	case "min":
		return fmt.Sprintf("field %q must not be empty", fe.Field())
	default:
		return fmt.Sprintf("field %q is invalid (%s)", fe.Field(), fe.Tag())
	}
}
