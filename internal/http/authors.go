package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	Create(author *entities.Author) error
	GetByID(id uint) (*entities.Author, error)
	GetAll() ([]entities.Author, error)
	Search(query string) ([]entities.Author, error)
	Update(author *entities.Author) error
	Delete(id uint) error
}

type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

type authorRequest struct {
	Name      string     `json:"name" binding:"required"`
	Bio       string     `json:"bio"`
	Email     string     `json:"email"`
	Website   string     `json:"website"`
	BirthDate *time.Time `json:"birth_date"`
}

// ListAuthors returns all authors, optionally filtered by a search query.
// GET /api/authors?search=orwell
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	var (
		authors []entities.Author
		err     error
	)

	if query := c.Query("search"); query != "" {
		authors, err = ac.store.Search(query)
	} else {
		authors, err = ac.store.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	c.JSON(http.StatusOK, authors)
}

// GetAuthor returns a single author with their books.
// GET /api/authors/:id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}

	c.JSON(http.StatusOK, author)
}

// CreateAuthor creates a new author.
// POST /api/authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	author := entities.Author{
		Name:      req.Name,
		Bio:       req.Bio,
		Email:     req.Email,
		Website:   req.Website,
		BirthDate: req.BirthDate,
	}

	if err := ac.store.Create(&author); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "author with this name already exists")
			return
		}
		if errors.Is(err, entities.ErrMissingName) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create author")
		return
	}

	respondCreated(c, author)
}

// UpdateAuthor updates an existing author.
// PUT /api/authors/:id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "load author for update")
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	author.Name = req.Name
	author.Bio = req.Bio
	author.Email = req.Email
	author.Website = req.Website
	author.BirthDate = req.BirthDate

	if err := ac.store.Update(author); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "author with this name already exists")
			return
		}
		respondInternalError(c, err, "update author")
		return
	}

	c.JSON(http.StatusOK, author)
}

// DeleteAuthor removes an author and all their books.
// DELETE /api/authors/:id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ac.store.GetByID(id); err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "load author for delete")
		return
	}

	if err := ac.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete author")
		return
	}

	respondSuccess(c, "author deleted")
}
