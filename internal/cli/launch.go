package cli

import (
	"github.com/spf13/cobra"
)

func newLaunchCmd() *cobra.Command {
	var vendor, game, user, lang, lobby string

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a game and print the playable URL",
		Long: `Launch resolves the vendor code, provisions the provider user if needed,
tops the provider wallet up to the main wallet balance, and fetches the
game launch URL. Wallet reconciliation failures are reported but do not
block the launch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}

			result, err := launcher.LaunchGame(cmd.Context(), vendor, game, userCode, lang, lobby)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*result)
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code or label (required)")
	cmd.Flags().StringVar(&game, "game", "", "Game code (required)")
	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&lang, "lang", "", "Site language, mapped to a provider locale")
	cmd.Flags().StringVar(&lobby, "lobby", "", "Lobby URL the game returns to on exit")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}
