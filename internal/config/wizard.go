package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to blogsite! Let's configure your blog.")
	fmt.Println()

	cfg := DefaultConfig()

	// A seed list next to the config is the usual layout.
	for _, candidate := range []string{"posts.yml", "posts.yaml", "posts.json"} {
		if _, err := os.Stat(candidate); err == nil {
			cfg.CatalogFile = candidate
			fmt.Printf("Found post list: %s\n\n", candidate)
			break
		}
	}

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Public URL, used for share links.
	urlPrompt := promptui.Prompt{
		Label:   "Public base URL",
		Default: cfg.BaseURL,
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = baseURL

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for blogsite serve",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Listing size.
	sizePrompt := promptui.Select{
		Label: "Posts per listing (latest / popular)",
		Items: []string{"3", "5", "10"},
	}
	_, sizeStr, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("listing size: %w", err)
	}
	size, _ := strconv.Atoi(sizeStr)
	cfg.LatestCount = size
	cfg.PopularCount = size

	// 5. Build output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for blogsite build",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
