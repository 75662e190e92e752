package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthor_String(t *testing.T) {
	author := Author{Name: "Test Author"}
	assert.Equal(t, "Test Author", author.String())
}

func TestPublisher_String(t *testing.T) {
	publisher := Publisher{Name: "Test Publisher"}
	assert.Equal(t, "Test Publisher", publisher.String())
}

func TestBook_String(t *testing.T) {
	book := Book{Title: "Test Book"}
	assert.Equal(t, "Test Book", book.String())
}

func TestAuthor_BeforeCreate_RequiresName(t *testing.T) {
	author := Author{}
	err := author.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrMissingName)

	author.Name = "George Orwell"
	assert.NoError(t, author.BeforeCreate(nil))
}

func TestPublisher_BeforeCreate_RequiresName(t *testing.T) {
	publisher := Publisher{}
	err := publisher.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestBook_BeforeCreate_Validation(t *testing.T) {
	t.Run("requires title", func(t *testing.T) {
		book := Book{AuthorID: 1, PublisherID: 1, ISBN: "1234567890123"}
		assert.ErrorIs(t, book.BeforeCreate(nil), ErrMissingTitle)
	})

	t.Run("requires author reference", func(t *testing.T) {
		book := Book{Title: "1984", PublisherID: 1, ISBN: "1234567890123"}
		assert.ErrorIs(t, book.BeforeCreate(nil), ErrMissingAuthor)
	})

	t.Run("requires publisher reference", func(t *testing.T) {
		book := Book{Title: "1984", AuthorID: 1, ISBN: "1234567890123"}
		assert.ErrorIs(t, book.BeforeCreate(nil), ErrMissingPublisher)
	})

	t.Run("requires a 13 character isbn", func(t *testing.T) {
		book := Book{Title: "1984", AuthorID: 1, PublisherID: 1, ISBN: "123"}
		assert.ErrorIs(t, book.BeforeCreate(nil), ErrInvalidISBN)
	})

	t.Run("applies the language default", func(t *testing.T) {
		book := Book{Title: "1984", AuthorID: 1, PublisherID: 1, ISBN: "1234567890123"}
		require.NoError(t, book.BeforeCreate(nil))
		assert.Equal(t, "English", book.Language)
	})

	t.Run("keeps an explicit language", func(t *testing.T) {
		book := Book{Title: "1984", AuthorID: 1, PublisherID: 1, ISBN: "1234567890123", Language: "French"}
		require.NoError(t, book.BeforeCreate(nil))
		assert.Equal(t, "French", book.Language)
	})
}
