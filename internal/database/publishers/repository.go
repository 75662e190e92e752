// Package publishers provides database operations for publisher management.
package publishers

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Repository handles all publisher database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new publishers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new publisher. Returns a uniqueness violation error
// when a publisher with the same name already exists.
func (r *Repository) Create(publisher *entities.Publisher) error {
	return r.db.Create(publisher).Error
}

// GetByID retrieves a publisher with their books, newest book first.
func (r *Repository) GetByID(id uint) (*entities.Publisher, error) {
	var publisher entities.Publisher
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&publisher, id).Error
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetByName retrieves a publisher by exact name.
func (r *Repository) GetByName(name string) (*entities.Publisher, error) {
	var publisher entities.Publisher
	err := r.db.Where("name = ?", name).First(&publisher).Error
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetAll retrieves all publishers ordered by name.
func (r *Repository) GetAll() ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.Order("name ASC").Find(&publishers).Error
	return publishers, err
}

// GetActive retrieves publishers with the is_active flag set.
func (r *Repository) GetActive() ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&publishers).Error
	return publishers, err
}

// Update saves changes to an existing publisher.
func (r *Repository) Update(publisher *entities.Publisher) error {
	return r.db.Save(publisher).Error
}

// Delete removes a publisher and cascades to all their books.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publisher_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Publisher{}, id).Error
	})
}

// GetBooks retrieves all books released by a publisher, newest first.
func (r *Repository) GetBooks(publisherID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Where("publisher_id = ?", publisherID).
		Order("created_at DESC").Find(&books).Error
	return books, err
}

// Count returns the total number of publishers.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Publisher{}).Count(&count).Error
	return count, err
}
