package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import [feed-file]",
	Short: "Convert an RSS or Atom feed file into a seed list",
	Long:  `Reads a local RSS or Atom feed and writes its items as a YAML seed list (the catalog_file format). Imported posts start with zero views.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().Int("start-id", 1, "id of the first imported post")
	importCmd.Flags().StringP("output", "o", "", "write the seed list to this file instead of stdout")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	startID, _ := cmd.Flags().GetInt("start-id")
	output, _ := cmd.Flags().GetString("output")

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening feed: %w", err)
	}
	defer in.Close()

	posts, err := catalog.ParseFeed(in, startID)
	if err != nil {
		return err
	}
	if _, err := catalog.New(posts); err != nil {
		return fmt.Errorf("imported posts are invalid: %w", err)
	}

	if output == "" {
		return catalog.WriteSeed(os.Stdout, posts)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := catalog.WriteSeed(out, posts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Imported %d posts into %s\n", len(posts), output)
	return nil
}
