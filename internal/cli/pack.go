package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quizhost/quizhost/internal/model"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage question packs",
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored packs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		names, err := client().ListPacks(cmd.Context())
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(names)
		}
		if len(names) == 0 {
			out.Println("No packs stored")
			return nil
		}
		for _, name := range names {
			out.Println(name)
		}
		return nil
	},
}

var packShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a pack's categories and question counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := client().GetPack(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(pack)
		}
		out.Printf("Pack: %s\n", pack.Name)
		for cat, count := range pack.Categories {
			out.Printf("  %-20s %d questions\n", cat, count)
		}
		return nil
	},
}

var packUploadCmd = &cobra.Command{
	Use:   "upload <name> <file>",
	Short: "Upload a YAML question pack",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading pack file: %w", err)
		}

		var pack model.QuestionPack
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return fmt.Errorf("parsing pack file: %w", err)
		}

		uploaded, err := client().PutPack(cmd.Context(), args[0], pack.Categories)
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(uploaded)
		}
		out.Printf("Uploaded pack %s with %d categories\n", uploaded.Name, len(uploaded.Categories))
		return nil
	},
}

var packDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client().DeletePack(cmd.Context(), args[0]); err != nil {
			return err
		}
		output().Printf("Deleted pack %s\n", args[0])
		return nil
	},
}

func init() {
	packCmd.AddCommand(packListCmd, packShowCmd, packUploadCmd, packDeleteCmd)
	rootCmd.AddCommand(packCmd)
}
