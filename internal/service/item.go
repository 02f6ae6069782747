package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"fmt"

	"github.com/naughtygopher/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Категории ошибок сервиса. Слой API переводит их в HTTP-статусы в одном месте.
var (
	ErrItemNotFound      = errors.NotFound("Item not found")
	ErrNameTaken         = errors.Duplicate("Item with the same name already exists")
	ErrEmptyName         = errors.Validation("Item name must not be empty")
	ErrFilterRequired    = errors.InputBody("At least one filter parameter (price_min or price_max) must be provided")
	ErrTransactionFailed = errors.InputBody("Transaction failed")
)

// DefaultTxPrice — цена, которую CreateAndUpdate выставляет, если вызывающий не передал свою.
const DefaultTxPrice int64 = 500

// NewItem входные данные для создания item.
type NewItem struct {
	Name        string
	Description string
	Price       int64
}

// ItemPatch частичное обновление: nil-поля не применяются.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *int64
}

func (p ItemPatch) updates() map[string]any {
	m := make(map[string]any, 3)
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Price != nil {
		m["price"] = *p.Price
	}
	return m
}

// PriceFilter границы цены (включительно). Хотя бы одна должна быть задана.
type PriceFilter struct {
	Min *int64
	Max *int64
}

// ItemService инкапсулирует бизнес-логику работы с Item.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// GetByID возвращает item или ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get item")
	}
	return it, nil
}

// ListAll возвращает все items в порядке вставки.
func (s *ItemService) ListAll(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list items")
	}
	return items, nil
}

// ListByPrice фильтрует items по цене. Пустой результат — не ошибка.
func (s *ItemService) ListByPrice(ctx context.Context, f PriceFilter) ([]model.Item, error) {
	if f.Min == nil && f.Max == nil {
		return nil, ErrFilterRequired
	}
	items, err := s.repo.ListByPrice(ctx, f.Min, f.Max)
	if err != nil {
		return nil, errors.Wrap(err, "filter items by price")
	}
	return items, nil
}

// Create вставляет item. Уникальность имени обеспечивает индекс БД.
func (s *ItemService) Create(ctx context.Context, in NewItem) (*model.Item, error) {
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	it := &model.Item{Name: in.Name, Description: in.Description, Price: in.Price}
	err := s.repo.Create(ctx, it)
	if errors.Is(err, repo.ErrDuplicateName) {
		return nil, ErrNameTaken
	}
	if err != nil {
		return nil, errors.Wrap(err, "create item")
	}
	s.logger.Debugw("item created", "id", it.ID, "name", it.Name)
	return it, nil
}

// Update применяет только заданные поля и обновляет updated_at.
func (s *ItemService) Update(ctx context.Context, id int64, p ItemPatch) (*model.Item, error) {
	if p.Name != nil && *p.Name == "" {
		return nil, ErrEmptyName
	}
	it, err := s.repo.Update(ctx, id, p.updates())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrItemNotFound
	case errors.Is(err, repo.ErrDuplicateName):
		return nil, ErrNameTaken
	case err != nil:
		return nil, errors.Wrap(err, "update item")
	}
	s.logger.Debugw("item updated", "id", id)
	return it, nil
}

// Delete удаляет item безвозвратно.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete item")
	}
	if !deleted {
		return ErrItemNotFound
	}
	s.logger.Debugw("item deleted", "id", id)
	return nil
}

// CreateAndUpdate атомарно создаёт item и выставляет цену price записи targetID.
// Любой сбой хранилища откатывает обе операции и возвращается как ErrTransactionFailed
// с исходной причиной внутри.
func (s *ItemService) CreateAndUpdate(ctx context.Context, in NewItem, targetID, price int64) (*model.Item, error) {
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	it := &model.Item{Name: in.Name, Description: in.Description, Price: in.Price}
	err := s.repo.CreateWithPriceUpdate(ctx, it, targetID, price)
	if err == nil {
		s.logger.Debugw("transaction committed", "id", it.ID, "target_id", targetID, "price", price)
		return it, nil
	}

	var cause error
	switch {
	case errors.Is(err, repo.ErrDuplicateName):
		cause = ErrNameTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
		cause = ErrItemNotFound
	default:
		cause = err
	}
	s.logger.Warnw("transaction rolled back", "target_id", targetID, "error", err)
	return nil, fmt.Errorf("%w: %w", ErrTransactionFailed, cause)
}
