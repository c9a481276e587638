package cmd

import (
	"fmt"

	"github.com/mentordash/mentordash/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApplication()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return application.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
