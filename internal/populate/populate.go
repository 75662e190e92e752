// Package populate synthesizes plausible fixture records for the catalog.
//
// Generation respects foreign key dependencies: authors and publishers are
// created before books, and books always reference existing parents. A
// process-wide counter tracks how many records of each model were created.
//
// # Usage
//
//	populator := populate.NewPopulator(db)
//	report, err := populator.Run(populate.Options{Num: 5})
package populate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Model names accepted by Options.Models.
const (
	ModelAuthor    = "Author"
	ModelPublisher = "Publisher"
	ModelBook      = "Book"
)

// DefaultNum is the number of records generated per model when the caller
// does not specify a count.
const DefaultNum = 10

// modelOrder keeps foreign key dependencies satisfied: books are only
// generated after authors and publishers.
var modelOrder = []string{ModelAuthor, ModelPublisher, ModelBook}

// Options controls a populate run.
type Options struct {
	Num    int      // records per model; DefaultNum when <= 0
	Models []string // restrict generation to these models; empty means all
}

// Report maps model names to the number of records created in one run.
type Report map[string]int

// Populator generates fixture records into a catalog database.
type Populator struct {
	db  *gorm.DB
	rnd *rand.Rand
	seq int
}

// NewPopulator creates a populator with a time-seeded random source.
func NewPopulator(db *gorm.DB) *Populator {
	return &Populator{db: db, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run generates records for the selected models and returns per-model
// creation counts. Books created to satisfy a missing parent dependency
// show up in the report under their own model name.
func (p *Populator) Run(opts Options) (Report, error) {
	num := opts.Num
	if num <= 0 {
		num = DefaultNum
	}

	selected, err := selectModels(opts.Models)
	if err != nil {
		return nil, err
	}

	report := Report{}
	for _, model := range modelOrder {
		if !selected[model] {
			continue
		}

		var genErr error
		switch model {
		case ModelAuthor:
			genErr = p.createAuthors(num, report)
		case ModelPublisher:
			genErr = p.createPublishers(num, report)
		case ModelBook:
			genErr = p.createBooks(num, report)
		}
		if genErr != nil {
			return report, genErr
		}
	}

	return report, nil
}

func selectModels(names []string) (map[string]bool, error) {
	selected := make(map[string]bool, len(modelOrder))
	if len(names) == 0 {
		for _, model := range modelOrder {
			selected[model] = true
		}
		return selected, nil
	}

	known := map[string]string{
		strings.ToLower(ModelAuthor):    ModelAuthor,
		strings.ToLower(ModelPublisher): ModelPublisher,
		strings.ToLower(ModelBook):      ModelBook,
	}
	for _, name := range names {
		model, ok := known[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown model %q (expected Author, Publisher, or Book)", name)
		}
		selected[model] = true
	}
	return selected, nil
}

func (p *Populator) createAuthors(num int, report Report) error {
	for i := 0; i < num; i++ {
		name, err := p.uniqueName(&entities.Author{}, func() string {
			return p.pick(firstNames) + " " + p.pick(lastNames)
		})
		if err != nil {
			return err
		}

		birthDate := p.randomDate(1930, 1990)
		author := &entities.Author{
			Name:      name,
			Bio:       p.pick(bioTemplates),
			Email:     emailFor(name),
			Website:   "https://" + slugify(name) + ".example.com",
			BirthDate: &birthDate,
		}
		if err := p.db.Create(author).Error; err != nil {
			return fmt.Errorf("failed to create author %q: %w", name, err)
		}
		report[ModelAuthor]++
		created.record(ModelAuthor, 1)
	}
	return nil
}

func (p *Populator) createPublishers(num int, report Report) error {
	for i := 0; i < num; i++ {
		name, err := p.uniqueName(&entities.Publisher{}, func() string {
			return p.pick(publisherNames)
		})
		if err != nil {
			return err
		}

		establishedDate := p.randomDate(1900, 2000)
		publisher := &entities.Publisher{
			Name:            name,
			Address:         fmt.Sprintf("%d %s Street, %s", 1+p.rnd.Intn(200), p.pick(titleNouns), p.pick(cities)),
			Website:         "https://" + slugify(name) + ".example.com",
			EstablishedDate: &establishedDate,
			ContactEmail:    "contact@" + slugify(name) + ".example.com",
			PhoneNumber:     fmt.Sprintf("+1-555-%04d", p.rnd.Intn(10000)),
			Description:     p.pick(descriptionTemplates),
			Logo:            "https://" + slugify(name) + ".example.com/logo.png",
			SocialMediaLinks: entities.SocialLinks{
				"twitter":   "https://twitter.com/" + slugify(name),
				"instagram": "https://instagram.com/" + slugify(name),
			},
			IsActive: true,
		}
		if err := p.db.Create(publisher).Error; err != nil {
			return fmt.Errorf("failed to create publisher %q: %w", name, err)
		}
		report[ModelPublisher]++
		created.record(ModelPublisher, 1)
	}
	return nil
}

func (p *Populator) createBooks(num int, report Report) error {
	authorIDs, err := p.parentIDs(&entities.Author{}, report)
	if err != nil {
		return err
	}
	publisherIDs, err := p.parentIDs(&entities.Publisher{}, report)
	if err != nil {
		return err
	}

	for i := 0; i < num; i++ {
		isbn, err := p.uniqueISBN()
		if err != nil {
			return err
		}

		publicationDate := p.randomDate(1950, time.Now().Year())
		title := p.bookTitle()
		book := &entities.Book{
			Title:           title,
			Description:     p.pick(descriptionTemplates),
			AuthorID:        authorIDs[p.rnd.Intn(len(authorIDs))],
			PublisherID:     publisherIDs[p.rnd.Intn(len(publisherIDs))],
			PublicationDate: &publicationDate,
			ISBN:            isbn,
			Pages:           120 + p.rnd.Intn(600),
			CoverImage:      "https://covers.example.com/" + isbn + ".jpg",
			Language:        p.pick(languages),
			Genre:           p.pick(genres),
			Summary:         p.pick(descriptionTemplates),
			Price:           decimal.New(int64(499+p.rnd.Intn(3500)), -2),
		}
		if err := p.db.Create(book).Error; err != nil {
			return fmt.Errorf("failed to create book %q: %w", title, err)
		}
		report[ModelBook]++
		created.record(ModelBook, 1)
	}
	return nil
}

// parentIDs returns the existing primary keys for a parent model, creating
// one record first if the table is empty so books always have a reference.
func (p *Populator) parentIDs(model any, report Report) ([]uint, error) {
	var ids []uint
	if err := p.db.Model(model).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}

	switch model.(type) {
	case *entities.Author:
		if err := p.createAuthors(1, report); err != nil {
			return nil, err
		}
	case *entities.Publisher:
		if err := p.createPublishers(1, report); err != nil {
			return nil, err
		}
	}

	if err := p.db.Model(model).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// uniqueName draws candidates from generate until one is unused, falling
// back to a sequence suffix when the pools are exhausted. Suffixed
// candidates go through the same existence check: earlier runs against
// the same database may have written suffixed names already.
func (p *Populator) uniqueName(model any, generate func() string) (string, error) {
	for attempt := 0; attempt < 25; attempt++ {
		candidate := generate()
		var count int64
		if err := p.db.Model(model).Where("name = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	for {
		p.seq++
		candidate := fmt.Sprintf("%s %d", generate(), p.seq)
		var count int64
		if err := p.db.Model(model).Where("name = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

func (p *Populator) uniqueISBN() (string, error) {
	for attempt := 0; attempt < 50; attempt++ {
		candidate := fmt.Sprintf("978%010d", p.rnd.Int63n(10_000_000_000))
		var count int64
		if err := p.db.Model(&entities.Book{}).Where("isbn = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique isbn")
}

func (p *Populator) bookTitle() string {
	if p.rnd.Intn(2) == 0 {
		return "The " + p.pick(titleAdjectives) + " " + p.pick(titleNouns)
	}
	return p.pick(titleAdjectives) + " " + p.pick(titleNouns)
}

func (p *Populator) pick(pool []string) string {
	return pool[p.rnd.Intn(len(pool))]
}

func (p *Populator) randomDate(minYear, maxYear int) time.Time {
	year := minYear + p.rnd.Intn(maxYear-minYear+1)
	month := time.Month(1 + p.rnd.Intn(12))
	day := 1 + p.rnd.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "&", "and")
	slug = strings.ReplaceAll(slug, ".", "")
	return slug
}
