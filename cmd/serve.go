package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/consent"
	"github.com/awpl-blog/blogsite/internal/server"
	"github.com/awpl-blog/blogsite/internal/site"
	"github.com/awpl-blog/blogsite/internal/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog HTTP server",
	Long:  `Serves the landing page, post pages, listing fragments and the view-count and consent API. View counts and consent are kept in the SQLite database under data_dir.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	renderer, err := site.NewRenderer(cfg.SiteName, cfg.BaseURL)
	if err != nil {
		return err
	}

	database, store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	consentMgr := consent.NewManager(store, consent.WithHistory(consent.NewHistory(database)))

	srv := server.New(server.Config{
		Port:      cfg.Port,
		StaticDir: filepath.Join(cfg.ContentDir, "images"),
		Listings:  listings(cfg),
		AllowAll:  cfg.AllowAllOrigins,
	}, cat, renderer, views.NewCounter(store), consentMgr)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	fmt.Fprintf(os.Stderr, "blogsite %s starting on port %d\n", Version, cfg.Port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
	fmt.Fprintf(os.Stderr, "  Key-value store: %s\n", cfg.KVBackend)
	fmt.Fprintf(os.Stderr, "  Posts: %d\n", cat.Len())

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
