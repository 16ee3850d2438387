package cli

import (
	"github.com/spf13/cobra"

	"github.com/quizhost/quizhost/internal/api/request"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage host accounts",
}

var (
	flagUsername    string
	flagDisplayName string
	flagPassword    string
)

var hostRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a host account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := client().Register(cmd.Context(), request.RegisterRequest{
			Username:    flagUsername,
			DisplayName: flagDisplayName,
			Password:    flagPassword,
		})
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(resp)
		}
		out.Printf("Registered %s (%s)\n", resp.Host.Username, resp.Host.ID)
		out.Printf("Session token: %s\n", resp.SessionToken)
		out.Printf("Export it: export %s=%s\n", EnvSessionToken, resp.SessionToken)
		return nil
	},
}

var hostLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a host",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := client().Login(cmd.Context(), request.LoginRequest{
			Username: flagUsername,
			Password: flagPassword,
		})
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(resp)
		}
		out.Printf("Logged in as %s\n", resp.Host.Username)
		out.Printf("Session token: %s\n", resp.SessionToken)
		return nil
	},
}

var hostWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated host",
	RunE: func(cmd *cobra.Command, _ []string) error {
		host, err := client().Me(cmd.Context())
		if err != nil {
			return err
		}

		out := output()
		if out.JSON() {
			return out.PrintJSON(host)
		}
		out.Printf("%s (%s)\n", host.Username, host.ID)
		return nil
	},
}

func init() {
	hostRegisterCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "username")
	hostRegisterCmd.Flags().StringVar(&flagDisplayName, "display-name", "", "display name")
	hostRegisterCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "password")
	_ = hostRegisterCmd.MarkFlagRequired("username")
	_ = hostRegisterCmd.MarkFlagRequired("password")

	hostLoginCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "username")
	hostLoginCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "password")
	_ = hostLoginCmd.MarkFlagRequired("username")
	_ = hostLoginCmd.MarkFlagRequired("password")

	hostCmd.AddCommand(hostRegisterCmd, hostLoginCmd, hostWhoamiCmd)
	rootCmd.AddCommand(hostCmd)
}
