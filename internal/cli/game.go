package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quizhost/quizhost/internal/api/request"
	"github.com/quizhost/quizhost/internal/model"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Run a guild's game",
}

var (
	flagConfigFile  string
	flagPack        string
	flagGameName    string
	flagDescription string
	flagTeams       []string
	flagPerCategory int
	flagMember      string
	flagTeam        string
	flagRole        string
	flagPoints      int
)

var gameCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a game from a config file or a stored pack",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var req request.CreateGameRequest
		switch {
		case flagConfigFile != "" && flagPack == "":
			data, err := os.ReadFile(flagConfigFile)
			if err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
			var cfg model.GameConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("parsing config file: %w", err)
			}
			req.Config = &cfg
		case flagPack != "" && flagConfigFile == "":
			req.FromPack = &request.PackGame{
				Pack:        flagPack,
				Name:        flagGameName,
				Description: flagDescription,
				Teams:       flagTeams,
				PerCategory: flagPerCategory,
			}
		default:
			return fmt.Errorf("exactly one of --config or --pack is required")
		}

		g, err := client().CreateGame(cmd.Context(), flagGuild, req)
		if err != nil {
			return err
		}
		return output().PrintGame(*g)
	},
}

var gameShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the guild's active game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := client().GetGame(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintGame(*g)
	},
}

var gameAnnounceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Announce the game and open enrollment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client().Announce(cmd.Context(), flagGuild); err != nil {
			return err
		}
		output().Println("Game announced")
		return nil
	},
}

var gameEnrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Enroll a member in the game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client().Enroll(cmd.Context(), flagGuild, flagMember); err != nil {
			return err
		}
		output().Printf("Enrolled %s\n", flagMember)
		return nil
	},
}

var gameWithdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw a member from the game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client().Withdraw(cmd.Context(), flagGuild, flagMember); err != nil {
			return err
		}
		output().Printf("Withdrew %s\n", flagMember)
		return nil
	},
}

var gameStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the game: freeze enrollment and balance teams",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := client().Start(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintGame(*g)
	},
}

var gameRebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "Redistribute players across teams",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := client().Rebalance(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintGame(*g)
	},
}

var gameBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the question board",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b, err := client().Board(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintBoard(*b)
	},
}

var gameStandingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the leaderboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := client().Standings(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintStandings(*s)
	},
}

var gameEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the game and record its summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		summary, err := client().EndGame(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}
		return output().PrintSummary(*summary)
	},
}

var gameHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the guild's finished games",
	RunE: func(cmd *cobra.Command, _ []string) error {
		summaries, err := client().History(cmd.Context(), flagGuild)
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(summaries)
		}
		if len(summaries) == 0 {
			out.Println("No finished games")
			return nil
		}
		for _, s := range summaries {
			if err := out.PrintSummary(s); err != nil {
				return err
			}
		}
		return nil
	},
}

var questionShowCmd = &cobra.Command{
	Use:   "show-question <question-id>",
	Short: "Display a question and open it for buzzing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := client().ShowQuestion(cmd.Context(), flagGuild, args[0])
		if err != nil {
			return err
		}
		return output().PrintQuestion(*q)
	},
}

var questionBuzzCmd = &cobra.Command{
	Use:   "buzz <question-id>",
	Short: "Record a team buzzing on a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client().BuzzIn(cmd.Context(), flagGuild, args[0], flagTeam); err != nil {
			return err
		}
		output().Printf("%s buzzed in\n", flagTeam)
		return nil
	},
}

var questionAnswerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Close a question out and reveal its answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := client().AnswerQuestion(cmd.Context(), flagGuild, args[0])
		if err != nil {
			return err
		}
		return output().PrintQuestion(*q)
	},
}

var teamRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Bind an external role to a team",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client().AttachRole(cmd.Context(), flagGuild, flagTeam, flagRole); err != nil {
			return err
		}
		output().Printf("Bound role %s to %s\n", flagRole, flagTeam)
		return nil
	},
}

var teamPointsCmd = &cobra.Command{
	Use:   "award",
	Short: "Award points to a team (negative to deduct)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		team, err := client().AwardPoints(cmd.Context(), flagGuild, flagTeam, flagPoints)
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(team)
		}
		out.Printf("%s now has %d points\n", team.Name, team.Score)
		return nil
	},
}

func init() {
	gameCmd.PersistentFlags().StringVarP(&flagGuild, "guild", "g", "", "guild identifier")
	_ = gameCmd.MarkPersistentFlagRequired("guild")

	gameCreateCmd.Flags().StringVarP(&flagConfigFile, "config", "c", "", "game config file (YAML)")
	gameCreateCmd.Flags().StringVar(&flagPack, "pack", "", "stored question pack name")
	gameCreateCmd.Flags().StringVar(&flagGameName, "name", "", "game name (with --pack)")
	gameCreateCmd.Flags().StringVar(&flagDescription, "description", "", "game description (with --pack)")
	gameCreateCmd.Flags().StringSliceVar(&flagTeams, "teams", nil, "team names (with --pack)")
	gameCreateCmd.Flags().IntVar(&flagPerCategory, "per-category", 0, "questions per category (with --pack)")

	gameEnrollCmd.Flags().StringVarP(&flagMember, "member", "m", "", "member identifier")
	_ = gameEnrollCmd.MarkFlagRequired("member")
	gameWithdrawCmd.Flags().StringVarP(&flagMember, "member", "m", "", "member identifier")
	_ = gameWithdrawCmd.MarkFlagRequired("member")

	questionBuzzCmd.Flags().StringVarP(&flagTeam, "team", "t", "", "team name")
	_ = questionBuzzCmd.MarkFlagRequired("team")

	teamRoleCmd.Flags().StringVarP(&flagTeam, "team", "t", "", "team name")
	teamRoleCmd.Flags().StringVar(&flagRole, "role", "", "role identifier")
	_ = teamRoleCmd.MarkFlagRequired("team")
	_ = teamRoleCmd.MarkFlagRequired("role")

	teamPointsCmd.Flags().StringVarP(&flagTeam, "team", "t", "", "team name")
	teamPointsCmd.Flags().IntVarP(&flagPoints, "points", "p", 0, "points to award")
	_ = teamPointsCmd.MarkFlagRequired("team")
	_ = teamPointsCmd.MarkFlagRequired("points")

	gameCmd.AddCommand(
		gameCreateCmd, gameShowCmd, gameAnnounceCmd,
		gameEnrollCmd, gameWithdrawCmd,
		gameStartCmd, gameRebalanceCmd,
		gameBoardCmd, gameStandingsCmd,
		gameEndCmd, gameHistoryCmd,
		questionShowCmd, questionBuzzCmd, questionAnswerCmd,
		teamRoleCmd, teamPointsCmd,
	)
	rootCmd.AddCommand(gameCmd)
}
