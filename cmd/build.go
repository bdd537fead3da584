package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/progress"
	"github.com/awpl-blog/blogsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the blog as a static site",
	Long:  `Writes index.html with the latest and popular listings, one page per post, style.css, search-index.json and site.js to the output directory. site.js runs search, view counts and the cookie choice in the browser.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 8080, "port for the local dev server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	renderer, err := site.NewRenderer(cfg.SiteName, cfg.BaseURL)
	if err != nil {
		return err
	}

	builder := &site.Builder{
		Catalog:   cat,
		Renderer:  renderer,
		OutputDir: outputDir,
		Listings:  listings(cfg),
		Reporter:  progress.NewReporter(),
	}
	pageCount, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d pages)\n", outputDir, pageCount)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		if err := site.Serve(outputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
