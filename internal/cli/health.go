package cli

import (
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client().Health(cmd.Context()); err != nil {
			return err
		}
		output().Println("Server is healthy")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
