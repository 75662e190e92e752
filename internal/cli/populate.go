package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/populate"
)

// PopulateCommand fills the catalog with synthesized fixture records.
type PopulateCommand struct {
	Target       string
	DatabasePath string
	Num          int
	Models       string
}

func NewPopulateCommand() *PopulateCommand {
	return &PopulateCommand{}
}

func (cmd *PopulateCommand) ParseFlags(args []string) error {
	// The target label is positional and may precede the flags.
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd.Target = args[0]
		args = args[1:]
	}

	cfg := config.NewConfig()

	fs := flag.NewFlagSet("populate", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the catalog database file")
	fs.IntVar(&cmd.Num, "num", cfg.Populate.Num, "Number of records to create per model")
	fs.StringVar(&cmd.Models, "models", "", "Comma-separated list of models to populate: Author, Publisher, Book (default: all)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s populate [target] [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate plausible fixture data for the catalog schema.\n\n")
		fmt.Fprintf(os.Stderr, "Authors and publishers are always created before books so that\n")
		fmt.Fprintf(os.Stderr, "foreign key references stay valid.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Create 5 of each model:\n")
		fmt.Fprintf(os.Stderr, "  %s populate catalog -num 5\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Only authors and publishers:\n")
		fmt.Fprintf(os.Stderr, "  %s populate catalog -models Author,Publisher -num 10\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Target == "" {
		cmd.Target = config.DefaultPopulateTarget
	}
	if cmd.Target != config.DefaultPopulateTarget {
		return fmt.Errorf("unknown target %q (only %q is registered)", cmd.Target, config.DefaultPopulateTarget)
	}

	return nil
}

func (cmd *PopulateCommand) Run() error {
	fmt.Println("Populate")
	fmt.Println("========")
	fmt.Printf("Database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	opts := populate.Options{Num: cmd.Num}
	if cmd.Models != "" {
		opts.Models = strings.Split(cmd.Models, ",")
	}

	populator := populate.NewPopulator(db.DB)
	report, err := populator.Run(opts)
	if err != nil {
		return fmt.Errorf("populate failed: %w", err)
	}

	fmt.Println("\nCreated:")
	models := make([]string, 0, len(report))
	for model := range report {
		models = append(models, model)
	}
	sort.Strings(models)
	for _, model := range models {
		fmt.Printf("  %-10s %d\n", model, report[model])
	}

	totals := populate.Counts()
	fmt.Println("\nProcess totals:")
	models = models[:0]
	for model := range totals {
		models = append(models, model)
	}
	sort.Strings(models)
	for _, model := range models {
		fmt.Printf("  %-10s %d\n", model, totals[model])
	}

	return nil
}
