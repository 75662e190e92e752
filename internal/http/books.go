package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// BookStore defines database operations for book management.
type BookStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	List(filter books.Filter) ([]entities.Book, error)
	Search(query string) ([]entities.Book, error)
	Update(book *entities.Book) error
	Delete(id uint) error
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type bookRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	AuthorID        uint            `json:"author_id" binding:"required"`
	PublisherID     uint            `json:"publisher_id" binding:"required"`
	PublicationDate *time.Time      `json:"publication_date"`
	ISBN            string          `json:"isbn" binding:"required"`
	Pages           int             `json:"pages"`
	CoverImage      string          `json:"cover_image"`
	Language        string          `json:"language"`
	Genre           string          `json:"genre"`
	Summary         string          `json:"summary"`
	Price           decimal.Decimal `json:"price"`
}

// ListBooks returns books newest first, optionally filtered.
// GET /api/books?author_id=1&publisher_id=2&genre=Fiction&language=English&search=river
func (bc *BooksController) ListBooks(c *gin.Context) {
	var (
		result []entities.Book
		err    error
	)

	if query := c.Query("search"); query != "" {
		result, err = bc.store.Search(query)
	} else {
		filter := books.Filter{
			AuthorID:    parseQueryUint(c, "author_id"),
			PublisherID: parseQueryUint(c, "publisher_id"),
			Genre:       c.Query("genre"),
			Language:    c.Query("language"),
		}
		result, err = bc.store.List(filter)
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBook returns a single book with its author and publisher.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook creates a new book referencing an existing author and publisher.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book := entities.Book{
		Title:           req.Title,
		Description:     req.Description,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		PublicationDate: req.PublicationDate,
		ISBN:            req.ISBN,
		Pages:           req.Pages,
		CoverImage:      req.CoverImage,
		Language:        req.Language,
		Genre:           req.Genre,
		Summary:         req.Summary,
		Price:           req.Price,
	}

	if err := bc.store.Create(&book); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "book with this isbn already exists")
			return
		}
		if isValidationError(err) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// UpdateBook updates an existing book.
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "load book for update")
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book.Title = req.Title
	book.Description = req.Description
	book.AuthorID = req.AuthorID
	book.PublisherID = req.PublisherID
	book.PublicationDate = req.PublicationDate
	book.ISBN = req.ISBN
	book.Pages = req.Pages
	book.CoverImage = req.CoverImage
	book.Language = req.Language
	book.Genre = req.Genre
	book.Summary = req.Summary
	book.Price = req.Price

	// Saving with a stale preloaded association would resurrect old
	// parent data, so drop them before the update.
	book.Author = entities.Author{}
	book.Publisher = entities.Publisher{}

	if err := bc.store.Update(book); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "book with this isbn already exists")
			return
		}
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := bc.store.GetByID(id); err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "load book for delete")
		return
	}

	if err := bc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}

func isValidationError(err error) bool {
	return errors.Is(err, entities.ErrMissingTitle) ||
		errors.Is(err, entities.ErrMissingAuthor) ||
		errors.Is(err, entities.ErrMissingPublisher) ||
		errors.Is(err, entities.ErrInvalidISBN)
}
