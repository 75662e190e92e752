package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// PublisherStore defines database operations for publisher management.
type PublisherStore interface {
	Create(publisher *entities.Publisher) error
	GetByID(id uint) (*entities.Publisher, error)
	GetAll() ([]entities.Publisher, error)
	GetActive() ([]entities.Publisher, error)
	Update(publisher *entities.Publisher) error
	Delete(id uint) error
}

type PublishersController struct {
	store PublisherStore
}

func NewPublishersController(store PublisherStore) *PublishersController {
	return &PublishersController{store: store}
}

type publisherRequest struct {
	Name             string               `json:"name" binding:"required"`
	Address          string               `json:"address"`
	Website          string               `json:"website"`
	EstablishedDate  *time.Time           `json:"established_date"`
	ContactEmail     string               `json:"contact_email"`
	PhoneNumber      string               `json:"phone_number"`
	Description      string               `json:"description"`
	Logo             string               `json:"logo"`
	SocialMediaLinks entities.SocialLinks `json:"social_media_links"`
	IsActive         *bool                `json:"is_active"`
}

// ListPublishers returns all publishers, or only active ones with ?active=true.
// GET /api/publishers
func (pc *PublishersController) ListPublishers(c *gin.Context) {
	var (
		publishers []entities.Publisher
		err        error
	)

	if c.Query("active") == "true" {
		publishers, err = pc.store.GetActive()
	} else {
		publishers, err = pc.store.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list publishers")
		return
	}

	c.JSON(http.StatusOK, publishers)
}

// GetPublisher returns a single publisher with their books.
// GET /api/publishers/:id
func (pc *PublishersController) GetPublisher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	publisher, err := pc.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "publisher")
			return
		}
		respondInternalError(c, err, "get publisher")
		return
	}

	c.JSON(http.StatusOK, publisher)
}

// CreatePublisher creates a new publisher.
// POST /api/publishers
func (pc *PublishersController) CreatePublisher(c *gin.Context) {
	var req publisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	publisher := entities.Publisher{
		Name:             req.Name,
		Address:          req.Address,
		Website:          req.Website,
		EstablishedDate:  req.EstablishedDate,
		ContactEmail:     req.ContactEmail,
		PhoneNumber:      req.PhoneNumber,
		Description:      req.Description,
		Logo:             req.Logo,
		SocialMediaLinks: req.SocialMediaLinks,
		IsActive:         true,
	}
	if req.IsActive != nil {
		publisher.IsActive = *req.IsActive
	}

	if err := pc.store.Create(&publisher); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "publisher with this name already exists")
			return
		}
		if errors.Is(err, entities.ErrMissingName) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create publisher")
		return
	}

	// A false flag at insert time falls back to the column default, so
	// an explicitly inactive publisher needs a follow-up update.
	if req.IsActive != nil && !*req.IsActive {
		if err := pc.store.Update(&publisher); err != nil {
			respondInternalError(c, err, "create publisher")
			return
		}
	}

	respondCreated(c, publisher)
}

// UpdatePublisher updates an existing publisher.
// PUT /api/publishers/:id
func (pc *PublishersController) UpdatePublisher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	publisher, err := pc.store.GetByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "publisher")
			return
		}
		respondInternalError(c, err, "load publisher for update")
		return
	}

	var req publisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	publisher.Name = req.Name
	publisher.Address = req.Address
	publisher.Website = req.Website
	publisher.EstablishedDate = req.EstablishedDate
	publisher.ContactEmail = req.ContactEmail
	publisher.PhoneNumber = req.PhoneNumber
	publisher.Description = req.Description
	publisher.Logo = req.Logo
	publisher.SocialMediaLinks = req.SocialMediaLinks
	if req.IsActive != nil {
		publisher.IsActive = *req.IsActive
	}

	if err := pc.store.Update(publisher); err != nil {
		if database.IsUniqueViolation(err) {
			respondConflict(c, "publisher with this name already exists")
			return
		}
		respondInternalError(c, err, "update publisher")
		return
	}

	c.JSON(http.StatusOK, publisher)
}

// DeletePublisher removes a publisher and all their books.
// DELETE /api/publishers/:id
func (pc *PublishersController) DeletePublisher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := pc.store.GetByID(id); err != nil {
		if database.IsNotFound(err) {
			respondNotFound(c, "publisher")
			return
		}
		respondInternalError(c, err, "load publisher for delete")
		return
	}

	if err := pc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete publisher")
		return
	}

	respondSuccess(c, "publisher deleted")
}
