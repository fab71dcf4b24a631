package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/dependencies/random"
	"github.com/luckyroad/casinohub/internal/gameapi"
)

var (
	cfg        *Config
	session    gameapi.SessionStore
	authClient *Client
	gameClient *gameapi.Client
	launcher   *gameapi.Launcher
)

// overrideToken is a fixed token supplied via flag or environment, taking
// precedence over the stored session
type overrideToken string

func (t overrideToken) Token() string { return string(t) }

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hubctl",
		Short: "CLI tool for the casino hub API",
		Long: `hubctl is a CLI tool for interacting with the casino hub JSON API.

It supports account management, vendor and game catalog browsing, game
launching with automatic wallet reconciliation, and provider wallet
operations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			store, err := gameapi.NewFileSessionStore(cfg.SessionFile)
			if err != nil {
				return err
			}
			session = store

			var tokens gameapi.TokenSource = store
			if cfg.Token != "" {
				tokens = overrideToken(cfg.Token)
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			authClient = NewClient(cfg.ServerURL, tokens)
			gameClient = gameapi.NewClient(cfg.ServerURL+"/api/game-api", tokens)
			launcher = gameapi.NewLauncher(gameClient, authClient, clock.New(), random.New(), logger, cfg.LobbyURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CASINOHUB_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Access token (env: CASINOHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: CASINOHUB_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newCaptchaCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newVendorsCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
