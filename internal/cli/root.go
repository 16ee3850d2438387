package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagServerURL string
	flagToken     string
	flagOutput    string
	flagGuild     string
)

var rootCmd = &cobra.Command{
	Use:   "quizhost",
	Short: "Client for the quizhost trivia game server",
	Long: `quizhost is a command-line client for the quizhost trivia game server.

It drives the full game lifecycle: create a game for a guild, announce it,
enroll players, start it, run questions, award points, and end it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		out := output()
		out.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "",
		"server URL (or "+EnvServerURL+")")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "",
		"session token (or "+EnvSessionToken+")")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "",
		"output format: text or json (or "+EnvOutputFormat+")")
}

func client() *Client {
	cfg := LoadConfig(flagServerURL, flagToken, flagOutput)
	return NewClient(cfg.ServerURL, cfg.SessionToken)
}

func output() *Output {
	cfg := LoadConfig(flagServerURL, flagToken, flagOutput)
	return NewOutput(os.Stdout, cfg.OutputFormat)
}
