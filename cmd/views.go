package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/views"
)

var viewsCmd = &cobra.Command{
	Use:   "views [path]",
	Short: "Show or record page views for a page",
	Long:  `Reads the stored view count for the page named by the last segment of path. With --record, counts one more view first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runViews,
}

func init() {
	viewsCmd.Flags().Bool("record", false, "record one page view before printing")
	rootCmd.AddCommand(viewsCmd)
}

func runViews(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	record, _ := cmd.Flags().GetBool("record")

	page := views.PageID(args[0])
	if page == "" {
		return fmt.Errorf("no page in %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	counter := views.NewCounter(store)
	var n int
	if record {
		n, err = counter.Record(ctx, page)
	} else {
		n, err = counter.Current(ctx, page)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d\n", page, n)
	return nil
}
