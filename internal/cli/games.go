package cli

import (
	"github.com/spf13/cobra"
)

func newVendorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vendors",
		Short: "List available game vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			vendors, err := gameClient.Vendors(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(VendorList(vendors))
			return nil
		},
	}
}

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game catalog commands",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesDetailCmd())
	cmd.AddCommand(newGamesMiniCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	var vendor, lang string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a vendor's games",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := gameClient.Games(cmd.Context(), vendor, lang)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(GameList(games))
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code (required)")
	cmd.Flags().StringVar(&lang, "lang", "", "Locale for game names")
	_ = cmd.MarkFlagRequired("vendor")

	return cmd
}

func newGamesDetailCmd() *cobra.Command {
	var vendor, game string

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Show a single game",
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := gameClient.GameDetail(cmd.Context(), vendor, game)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*detail)
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code (required)")
	cmd.Flags().StringVar(&game, "game", "", "Game code (required)")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newGamesMiniCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "mini",
		Short: "List mini games",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := gameClient.MiniGames(cmd.Context(), lang)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(GameList(games))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Locale for game names")

	return cmd
}
