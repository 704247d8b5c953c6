package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var mobile, sessionToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token and mark the client logged in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.sessionService().Login(cmd.Context(), mobile, sessionToken); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&mobile, "mobile", "", "registered mobile number")
	cmd.Flags().StringVar(&sessionToken, "token", "", "session refresh token")
	_ = cmd.MarkFlagRequired("mobile")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and every cached KYC field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.sessionService().Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
