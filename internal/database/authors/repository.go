// Package authors provides database operations for author management.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetByName("George Orwell")
package authors

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new author. Returns a uniqueness violation error when
// an author with the same name already exists.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author with their books, newest book first.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByName retrieves an author by exact name.
func (r *Repository) GetByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves all authors ordered by name.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// Search finds authors by name (case-insensitive partial match).
func (r *Repository) Search(query string) ([]entities.Author, error) {
	var authors []entities.Author
	searchPattern := "%" + query + "%"
	err := r.db.Where("LOWER(name) LIKE LOWER(?)", searchPattern).
		Order("name ASC").Find(&authors).Error
	return authors, err
}

// Update saves changes to an existing author.
func (r *Repository) Update(author *entities.Author) error {
	return r.db.Save(author).Error
}

// Delete removes an author and cascades to all their books.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Author{}, id).Error
	})
}

// GetBooks retrieves all books by an author, newest first.
func (r *Repository) GetBooks(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Publisher").Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&books).Error
	return books, err
}

// Count returns the total number of authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}
