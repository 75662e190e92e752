package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/authors"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/database/publishers"
	http_controllers "github.com/mrlokans/bookcatalog/internal/http"
	"github.com/mrlokans/bookcatalog/internal/populate"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	authorsRepo := authors.NewRepository(db.DB)
	publishersRepo := publishers.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)

	// Demo mode keeps a public instance stocked with data by reseeding
	// the catalog on a schedule.
	var reseedCron *cron.Cron
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - reseeding catalog on schedule %q", cfg.Demo.ReseedSchedule)

		populator := populate.NewPopulator(db.DB)
		reseed := func() {
			report, err := populator.Run(populate.Options{Num: cfg.Demo.ReseedNum})
			if err != nil {
				log.Printf("Demo reseed failed: %v", err)
				return
			}
			log.Printf("Demo reseed complete: %v", report)
		}

		reseedCron = cron.New()
		if _, err := reseedCron.AddFunc(cfg.Demo.ReseedSchedule, reseed); err != nil {
			log.Fatalf("Invalid demo reseed schedule %q: %v", cfg.Demo.ReseedSchedule, err)
		}

		// Seed once after the configured startup delay, then follow the
		// schedule, so a fresh instance has data before the first tick.
		go func() {
			time.Sleep(cfg.Demo.StartupDelay)
			reseed()
			reseedCron.Start()
		}()
	}

	routerCfg := http_controllers.RouterConfig{
		Authors:    authorsRepo,
		Publishers: publishersRepo,
		Books:      booksRepo,
		Version:    version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if reseedCron != nil {
			stopCtx := reseedCron.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
		}
	}

	Serve(router, cfg, onShutdown)
}
