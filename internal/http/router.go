package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig carries all controller dependencies.
// Using a config struct keeps the wiring testable and the parameter
// count manageable.
type RouterConfig struct {
	Authors    AuthorStore
	Publishers PublisherStore
	Books      BookStore
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Version)
	authorsController := NewAuthorsController(cfg.Authors)
	publishersController := NewPublishersController(cfg.Publishers)
	booksController := NewBooksController(cfg.Books)

	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)

		api.GET("/authors", authorsController.ListAuthors)
		api.POST("/authors", authorsController.CreateAuthor)
		api.GET("/authors/:id", authorsController.GetAuthor)
		api.PUT("/authors/:id", authorsController.UpdateAuthor)
		api.DELETE("/authors/:id", authorsController.DeleteAuthor)

		api.GET("/publishers", publishersController.ListPublishers)
		api.POST("/publishers", publishersController.CreatePublisher)
		api.GET("/publishers/:id", publishersController.GetPublisher)
		api.PUT("/publishers/:id", publishersController.UpdatePublisher)
		api.DELETE("/publishers/:id", publishersController.DeletePublisher)

		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
	}

	return router
}
