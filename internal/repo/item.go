package repo

import (
	"Catalog/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Промахи по id возвращаются как gorm.ErrRecordNotFound, конфликт имени — как ErrDuplicateName.
type ItemRepository interface {
	// GetByID возвращает item по первичному ключу.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// ListAll возвращает все записи в порядке вставки.
	ListAll(ctx context.Context) ([]model.Item, error)

	// ListByPrice фильтрует по price >= priceMin и/или price <= priceMax (nil — без ограничения).
	ListByPrice(ctx context.Context, priceMin, priceMax *int64) ([]model.Item, error)

	// Create вставляет новую запись, заполняя id и метки времени.
	Create(ctx context.Context, it *model.Item) error

	// Update применяет частичные изменения и возвращает обновлённую запись.
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error)

	// Delete удаляет запись безвозвратно. deleted=false если записи не было.
	Delete(ctx context.Context, id int64) (deleted bool, err error)

	// CreateWithPriceUpdate в одной транзакции вставляет it и выставляет цену
	// записи targetID. Любая ошибка откатывает обе операции.
	CreateWithPriceUpdate(ctx context.Context, it *model.Item, targetID, price int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListByPrice(ctx context.Context, priceMin, priceMax *int64) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if priceMin != nil {
		q = q.Where("price >= ?", *priceMin)
	}
	if priceMax != nil {
		q = q.Where("price <= ?", *priceMax)
	}
	items := []model.Item{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	err := r.db.WithContext(ctx).Create(it).Error
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *itemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&it, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&it).Updates(updates).Error; err != nil {
			return err
		}
		// перечитываем, чтобы вернуть значения ровно как в БД
		return tx.First(&it, id).Error
	})
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *itemRepo) CreateWithPriceUpdate(ctx context.Context, it *model.Item, targetID, price int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(it).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Item{}).Where("id = ?", targetID).Update("price", price)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}
