package main

import (
	"fmt"

	"github.com/ArowuTest/oripay-exchange-backend/internal/app"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin markers",
	}
	cmd.AddCommand(adminGrantCmd(), adminRevokeCmd(), adminListCmd())
	return cmd
}

func adminGrantCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "grant [uid]",
		Short: "Grant admin access to an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid := args[0]
			return withApp(cmd.Context(), func(a *app.App) error {
				account, err := a.Repos.Accounts.FindByID(cmd.Context(), uid)
				if err != nil {
					return fmt.Errorf("identity %s: %w", uid, err)
				}
				if email == "" {
					email = account.Email
				}
				if err := a.Repos.Admins.Grant(cmd.Context(), uid, email); err != nil {
					return err
				}
				fmt.Printf("Granted admin access to %s (%s)\n", uid, email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email recorded on the admin marker")
	return cmd
}

func adminRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [uid]",
		Short: "Remove the admin marker of an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Repos.Admins.Revoke(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Revoked admin access from %s\n", args[0])
				return nil
			})
		},
	}
}

func adminListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admin identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				uids, err := a.Repos.Admins.FindAll(cmd.Context())
				if err != nil {
					return err
				}
				for _, uid := range uids {
					fmt.Println(uid)
				}
				return nil
			})
		},
	}
}

func reconcileCmd() *cobra.Command {
	var repair bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Find identities that have no profile record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				svc := services.NewReconciliationService(a.Provider, a.Repos.Users, a.Repos.Admins)
				report, err := svc.Sweep(cmd.Context(), repair)
				if err != nil {
					return err
				}
				fmt.Printf("Checked %d identities, %d without a profile, %d repaired\n",
					report.Checked, len(report.Orphans), report.Repaired)
				for _, uid := range report.Orphans {
					fmt.Printf("  %s\n", uid)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&repair, "repair", false, "Write a stub profile for each orphaned identity")
	return cmd
}
