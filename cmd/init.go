package cmd

import (
	"github.com/spf13/cobra"

	"github.com/awpl-blog/blogsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a blogsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the blog and writes the config file named by --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
