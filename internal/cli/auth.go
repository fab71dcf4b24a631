package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luckyroad/casinohub/internal/gameapi"
)

func newCaptchaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "captcha",
		Short: "Fetch a captcha challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := authClient.Captcha(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*result)
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var name, email, pass, confirm, captchaKey, captcha string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm == "" {
				confirm = pass
			}

			result, err := authClient.Register(cmd.Context(), name, email, pass, confirm, captchaKey, captcha)
			if err != nil {
				return err
			}

			if err := saveSession(result); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(*result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (defaults to --pass)")
	cmd.Flags().StringVar(&captchaKey, "captcha-key", "", "Captcha key from the captcha command")
	cmd.Flags().StringVar(&captcha, "captcha", "", "Captcha answer")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var name, pass, captchaKey, captcha string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with name or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := authClient.Login(cmd.Context(), name, pass, captchaKey, captcha)
			if err != nil {
				return err
			}

			if err := saveSession(result); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(*result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name or email (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&captchaKey, "captcha-key", "", "Captcha key from the captcha command")
	cmd.Flags().StringVar(&captcha, "captcha", "", "Captcha answer")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := authClient.Logout(cmd.Context())
			if err != nil {
				return err
			}

			if err := session.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := authClient.Me(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*user)
			return nil
		},
	}
}

// saveSession persists the login result so later commands can authenticate
func saveSession(result *AuthResult) error {
	token := result.AccessToken
	if token == "" {
		token = result.Token
	}
	return session.Set(&gameapi.Session{
		Token: token,
		User: gameapi.SessionUser{
			ID:      result.User.ID,
			Name:    result.User.Name,
			Email:   result.User.Email,
			Balance: result.User.Wallet(),
		},
	})
}

// currentUserCode resolves the user code for provider wallet operations,
// preferring an explicit flag over the stored session
func currentUserCode(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if s := session.Get(); s != nil && s.User.ID != "" {
		return s.User.ID, nil
	}
	return "", fmt.Errorf("not logged in: run login first or pass --user")
}
