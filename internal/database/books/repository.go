// Package books provides database operations for book management.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByISBN("9780451524935")
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Filter narrows down book listings. Zero fields are ignored.
type Filter struct {
	AuthorID    uint
	PublisherID uint
	Genre       string
	Language    string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new book. The author and publisher references must be
// set; a duplicate ISBN surfaces as a uniqueness violation error.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book with its author and publisher.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Publisher").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindByISBN retrieves a book by its ISBN.
func (r *Repository) FindByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Publisher").
		Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves all books, newest created first.
func (r *Repository) GetAll() ([]entities.Book, error) {
	return r.List(Filter{})
}

// List retrieves books matching the filter, newest created first.
func (r *Repository) List(filter Filter) ([]entities.Book, error) {
	var books []entities.Book
	query := r.db.Preload("Author").Preload("Publisher").Order("created_at DESC")

	if filter.AuthorID > 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.PublisherID > 0 {
		query = query.Where("publisher_id = ?", filter.PublisherID)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}

	err := query.Find(&books).Error
	return books, err
}

// Search finds books by title (case-insensitive partial match), newest first.
func (r *Repository) Search(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := r.db.Preload("Author").Preload("Publisher").
		Where("LOWER(title) LIKE LOWER(?)", searchPattern).
		Order("created_at DESC").Find(&books).Error
	return books, err
}

// Update saves changes to an existing book.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

// UpdateFields updates specific columns without touching the rest.
func (r *Repository) UpdateFields(id uint, fields map[string]any) error {
	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a book.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
