package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingName      = errors.New("name is required")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingAuthor    = errors.New("author reference is required")
	ErrMissingPublisher = errors.New("publisher reference is required")
	ErrInvalidISBN      = errors.New("isbn must be 13 characters")
)

// SocialLinks maps a platform name to a profile URL.
type SocialLinks map[string]string

// Author writes books. Names are unique across the catalog.
type Author struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Bio       string     `json:"bio,omitempty"`
	Email     string     `gorm:"size:100" json:"email,omitempty"`
	Website   string     `gorm:"size:200" json:"website,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

func (a Author) String() string {
	return a.Name
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Publisher issues books. Names are unique across the catalog.
type Publisher struct {
	ID               uint        `gorm:"primarykey" json:"id"`
	Name             string      `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Address          string      `json:"address,omitempty"`
	Website          string      `gorm:"size:200" json:"website,omitempty"`
	EstablishedDate  *time.Time  `json:"established_date,omitempty"`
	ContactEmail     string      `gorm:"size:100" json:"contact_email,omitempty"`
	PhoneNumber      string      `gorm:"size:20" json:"phone_number,omitempty"`
	Description      string      `json:"description,omitempty"`
	Logo             string      `gorm:"size:200" json:"logo,omitempty"`
	SocialMediaLinks SocialLinks `gorm:"serializer:json" json:"social_media_links,omitempty"`
	IsActive         bool        `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	Books []Book `gorm:"foreignKey:PublisherID" json:"books,omitempty"`
}

func (Publisher) TableName() string {
	return "publishers"
}

func (p Publisher) String() string {
	return p.Name
}

func (p *Publisher) BeforeCreate(tx *gorm.DB) error {
	if p.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Book belongs to exactly one author and one publisher. The same title
// may be reissued, but the (title, author, publisher, isbn) combination
// is unique, and the isbn is unique on its own.
type Book struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	Title           string          `gorm:"size:100;not null;index;uniqueIndex:idx_books_identity" json:"title"`
	Description     string          `json:"description,omitempty"`
	AuthorID        uint            `gorm:"not null;index;uniqueIndex:idx_books_identity" json:"author_id"`
	PublisherID     uint            `gorm:"not null;index;uniqueIndex:idx_books_identity" json:"publisher_id"`
	PublicationDate *time.Time      `json:"publication_date,omitempty"`
	ISBN            string          `gorm:"size:13;not null;uniqueIndex:idx_books_isbn;uniqueIndex:idx_books_identity" json:"isbn"`
	Pages           int             `json:"pages,omitempty"`
	CoverImage      string          `gorm:"size:200" json:"cover_image,omitempty"`
	Language        string          `gorm:"size:30;default:'English'" json:"language"`
	Genre           string          `gorm:"size:50;index" json:"genre,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Author    Author    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Publisher Publisher `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE" json:"publisher"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	return b.Title
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.Title == "" {
		return ErrMissingTitle
	}
	if b.AuthorID == 0 {
		return ErrMissingAuthor
	}
	if b.PublisherID == 0 {
		return ErrMissingPublisher
	}
	if len(b.ISBN) != 13 {
		return ErrInvalidISBN
	}
	if b.Language == "" {
		b.Language = "English"
	}
	return nil
}
