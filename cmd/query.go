package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search post titles and excerpts",
	Long:  `Runs a case-insensitive substring search over post titles and excerpts, in catalog order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var listCmd = &cobra.Command{
	Use:       "list [latest|popular]",
	Short:     "List the newest or most viewed posts",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"latest", "popular"},
	RunE:      runList,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	listCmd.Flags().IntP("limit", "n", 0, "number of posts (defaults to the configured listing size)")
	listCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	out := cat.Search(args[0])
	debugf("search %q: %s", out.Query, out.Status)

	if jsonOutput {
		return printJSON(out.Posts)
	}

	switch out.Status {
	case catalog.NotSearched:
		fmt.Println("Empty query; nothing searched.")
	case catalog.NoResults:
		fmt.Println("No results found. Try a different search term.")
	default:
		printPosts(out.Posts)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	mode := "latest"
	if len(args) == 1 {
		mode = args[0]
	}

	opts := listings(cfg)
	var posts []catalog.Post
	if mode == "popular" {
		if limit == 0 {
			limit = opts.PopularCount
		}
		posts = cat.Popular(limit)
	} else {
		if limit == 0 {
			limit = opts.LatestCount
		}
		posts = cat.Latest(limit)
	}

	if jsonOutput {
		return printJSON(posts)
	}
	printPosts(posts)
	return nil
}

func printPosts(posts []catalog.Post) {
	for i, p := range posts {
		fmt.Printf("%d. %s\n", i+1, p.Title)
		fmt.Printf("   %s · %s · %s\n", render.PostDate(p), render.ViewLabel(p.Views), p.URL)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
