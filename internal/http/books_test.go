package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

func setupBooksTest(t *testing.T) (*books.Repository, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return books.NewRepository(db.DB), db, cleanup
}

func createTestParents(t *testing.T, db *database.Database) (*entities.Author, *entities.Publisher) {
	t.Helper()

	author := &entities.Author{Name: "George Orwell"}
	require.NoError(t, db.DB.Create(author).Error)

	publisher := &entities.Publisher{Name: "Secker and Warburg"}
	require.NoError(t, db.DB.Create(publisher).Error)

	return author, publisher
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("creates a new book", func(t *testing.T) {
		repo, db, cleanup := setupBooksTest(t)
		defer cleanup()

		author, publisher := createTestParents(t, db)

		controller := NewBooksController(repo)
		router := gin.New()
		router.POST("/api/books", controller.CreateBook)

		payload := fmt.Sprintf(
			`{"title": "1984", "author_id": %d, "publisher_id": %d, "isbn": "9780451524935", "pages": 328, "price": "15.99"}`,
			author.ID, publisher.ID,
		)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, "1984", book.Title)
		assert.Equal(t, "English", book.Language)
		assert.Greater(t, book.ID, uint(0))
	})

	t.Run("rejects a duplicate isbn with 409", func(t *testing.T) {
		repo, db, cleanup := setupBooksTest(t)
		defer cleanup()

		author, publisher := createTestParents(t, db)
		require.NoError(t, repo.Create(&entities.Book{
			Title:       "Book 1",
			AuthorID:    author.ID,
			PublisherID: publisher.ID,
			ISBN:        "1234567890123",
		}))

		controller := NewBooksController(repo)
		router := gin.New()
		router.POST("/api/books", controller.CreateBook)

		payload := fmt.Sprintf(
			`{"title": "Book 2", "author_id": %d, "publisher_id": %d, "isbn": "1234567890123"}`,
			author.ID, publisher.ID,
		)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects missing required fields with 400", func(t *testing.T) {
		repo, _, cleanup := setupBooksTest(t)
		defer cleanup()

		controller := NewBooksController(repo)
		router := gin.New()
		router.POST("/api/books", controller.CreateBook)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(`{"title": "No References"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed isbn with 400", func(t *testing.T) {
		repo, db, cleanup := setupBooksTest(t)
		defer cleanup()

		author, publisher := createTestParents(t, db)

		controller := NewBooksController(repo)
		router := gin.New()
		router.POST("/api/books", controller.CreateBook)

		payload := fmt.Sprintf(
			`{"title": "Short ISBN", "author_id": %d, "publisher_id": %d, "isbn": "12345"}`,
			author.ID, publisher.ID,
		)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_GetBook(t *testing.T) {
	t.Run("returns a book with relations", func(t *testing.T) {
		repo, db, cleanup := setupBooksTest(t)
		defer cleanup()

		author, publisher := createTestParents(t, db)
		book := &entities.Book{
			Title:       "1984",
			AuthorID:    author.ID,
			PublisherID: publisher.ID,
			ISBN:        "9780451524935",
		}
		require.NoError(t, repo.Create(book))

		controller := NewBooksController(repo)
		router := gin.New()
		router.GET("/api/books/:id", controller.GetBook)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/books/%d", book.ID), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var loaded entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
		assert.Equal(t, "1984", loaded.Title)
		assert.Equal(t, "George Orwell", loaded.Author.Name)
		assert.Equal(t, "Secker and Warburg", loaded.Publisher.Name)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		repo, _, cleanup := setupBooksTest(t)
		defer cleanup()

		controller := NewBooksController(repo)
		router := gin.New()
		router.GET("/api/books/:id", controller.GetBook)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a non-numeric id", func(t *testing.T) {
		repo, _, cleanup := setupBooksTest(t)
		defer cleanup()

		controller := NewBooksController(repo)
		router := gin.New()
		router.GET("/api/books/:id", controller.GetBook)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/not-a-number", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_ListBooks(t *testing.T) {
	repo, db, cleanup := setupBooksTest(t)
	defer cleanup()

	author, publisher := createTestParents(t, db)
	otherAuthor := &entities.Author{Name: "Mary Shelley"}
	require.NoError(t, db.DB.Create(otherAuthor).Error)

	fixtures := []entities.Book{
		{Title: "1984", AuthorID: author.ID, PublisherID: publisher.ID, ISBN: "1111111111111", Genre: "Fiction"},
		{Title: "Frankenstein", AuthorID: otherAuthor.ID, PublisherID: publisher.ID, ISBN: "2222222222222", Genre: "Horror"},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(&fixtures[i]))
	}

	controller := NewBooksController(repo)
	router := gin.New()
	router.GET("/api/books", controller.ListBooks)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, 2)

	// Filter by author
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", fmt.Sprintf("/api/books?author_id=%d", otherAuthor.ID), nil)
	router.ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Frankenstein", result[0].Title)

	// Search by title
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/books?search=frank", nil)
	router.ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Frankenstein", result[0].Title)
}

func TestBooksController_UpdateBook(t *testing.T) {
	repo, db, cleanup := setupBooksTest(t)
	defer cleanup()

	author, publisher := createTestParents(t, db)
	book := &entities.Book{
		Title:       "1984",
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		ISBN:        "9780451524935",
		Pages:       328,
	}
	require.NoError(t, repo.Create(book))

	controller := NewBooksController(repo)
	router := gin.New()
	router.PUT("/api/books/:id", controller.UpdateBook)

	payload := fmt.Sprintf(
		`{"title": "Nineteen Eighty-Four", "author_id": %d, "publisher_id": %d, "isbn": "9780451524935", "pages": 336}`,
		author.ID, publisher.ID,
	)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", fmt.Sprintf("/api/books/%d", book.ID), bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	loaded, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", loaded.Title)
	assert.Equal(t, 336, loaded.Pages)
}

func TestBooksController_DeleteBook(t *testing.T) {
	repo, db, cleanup := setupBooksTest(t)
	defer cleanup()

	author, publisher := createTestParents(t, db)
	book := &entities.Book{
		Title:       "1984",
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		ISBN:        "9780451524935",
	}
	require.NoError(t, repo.Create(book))

	controller := NewBooksController(repo)
	router := gin.New()
	router.DELETE("/api/books/:id", controller.DeleteBook)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/books/%d", book.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	_, err := repo.GetByID(book.ID)
	assert.True(t, database.IsNotFound(err))
}
