package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luckyroad/casinohub/internal/dependencies/random"
)

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Provider wallet commands",
	}

	cmd.AddCommand(newWalletBalanceCmd())
	cmd.AddCommand(newWalletDepositCmd())
	cmd.AddCommand(newWalletWithdrawCmd())
	cmd.AddCommand(newWalletWithdrawAllCmd())
	cmd.AddCommand(newWalletSyncCmd())

	return cmd
}

func newWalletBalanceCmd() *cobra.Command {
	var user, vendor string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the provider wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}

			balance, err := gameClient.Balance(cmd.Context(), userCode, vendor)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(WalletBalance{UserCode: userCode, Balance: balance})
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code")

	return cmd
}

func newWalletDepositCmd() *cobra.Command {
	var user, vendor, order string
	var amount float64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Credit the provider wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}
			if order == "" {
				order = newOrderNo("DEPOSIT", userCode)
			}

			msg, err := gameClient.Deposit(cmd.Context(), userCode, amount, order, vendor)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code")
	cmd.Flags().StringVar(&order, "order", "", "Order number (generated when omitted)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to deposit (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWalletWithdrawCmd() *cobra.Command {
	var user, vendor, order string
	var amount float64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Debit the provider wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}
			if order == "" {
				order = newOrderNo("WITHDRAW", userCode)
			}

			msg, err := gameClient.Withdraw(cmd.Context(), userCode, amount, order, vendor)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code")
	cmd.Flags().StringVar(&order, "order", "", "Order number (generated when omitted)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to withdraw (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWalletWithdrawAllCmd() *cobra.Command {
	var user, vendor string

	cmd := &cobra.Command{
		Use:   "withdraw-all",
		Short: "Empty the provider wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}

			msg, err := gameClient.WithdrawAll(cmd.Context(), userCode, vendor)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code")

	return cmd
}

func newWalletSyncCmd() *cobra.Command {
	var user, vendor string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Top the provider wallet up to the main wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			userCode, err := currentUserCode(user)
			if err != nil {
				return err
			}

			result, err := launcher.Sync(cmd.Context(), userCode, vendor)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User code (defaults to the logged-in account)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor code")

	return cmd
}

// newOrderNo mints an order number in the provider's expected format
func newOrderNo(prefix, userCode string) string {
	suffix := random.New().String(9, random.OrderSuffixAlphabet)
	return fmt.Sprintf("%s_%s_%d_%s", prefix, userCode, time.Now().UnixMilli(), suffix)
}
