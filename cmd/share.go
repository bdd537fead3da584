package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share [platform] [title] [url]",
	Short: "Print a social share link",
	Long:  `Prints the share link for a page on facebook, twitter (or x), linkedin, whatsapp or telegram.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, err := share.ParsePlatform(args[0])
		if err != nil {
			return err
		}
		link, err := share.URL(platform, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(link)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
