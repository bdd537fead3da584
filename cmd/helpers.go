package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/awpl-blog/blogsite/internal/blog"
	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/config"
	"github.com/awpl-blog/blogsite/internal/db"
	"github.com/awpl-blog/blogsite/internal/kv"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `blogsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildCatalog loads the seed list named in cfg (or the built-in one) and
// attaches markdown bodies found under the content directory.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	posts := catalog.DefaultPosts()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		posts = loaded
	}
	debugf("catalog: %d posts", len(posts))

	if cfg.PostsGlob != "" {
		bodies, err := catalog.LoadBodies(os.DirFS(cfg.ContentDir), cfg.PostsGlob)
		if err != nil {
			return nil, fmt.Errorf("loading post bodies: %w", err)
		}
		debugf("catalog: %d markdown bodies matched %s", len(bodies), cfg.PostsGlob)
		posts = catalog.AttachBodies(posts, bodies)
	}

	return catalog.New(posts)
}

// openStore opens the site database and the configured kv store. The
// returned func closes both.
func openStore(ctx context.Context, cfg *config.Config) (*db.DB, kv.Store, func(), error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	switch cfg.KVBackend {
	case config.BackendRedis:
		client, err := kv.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			database.Close()
			return nil, nil, nil, err
		}
		debugf("kv: redis at %s (prefix %q)", cfg.RedisAddr, cfg.RedisPrefix)
		closeAll := func() {
			client.Close()
			database.Close()
		}
		return database, kv.NewRedis(client, cfg.RedisPrefix), closeAll, nil

	case config.BackendPostgres:
		pool, err := kv.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			database.Close()
			return nil, nil, nil, err
		}
		debugf("kv: postgres")
		closeAll := func() {
			pool.Close()
			database.Close()
		}
		return database, kv.NewPostgres(pool), closeAll, nil

	default:
		return database, kv.NewSQLite(database), func() { database.Close() }, nil
	}
}

func listings(cfg *config.Config) blog.Options {
	return blog.Options{LatestCount: cfg.LatestCount, PopularCount: cfg.PopularCount}
}
