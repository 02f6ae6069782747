package model

// Item — единственный ресурс каталога.
type Item struct {
	Base

	Name        string `gorm:"not null;uniqueIndex:idx_items_name"`
	Description string `gorm:"not null"`
	Price       int64  `gorm:"not null"`
}

func (Item) TableName() string { return "items" }
