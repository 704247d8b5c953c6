package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"renalize/internal/cache"
)

func lockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <passcode>",
		Short: "Set a passcode guarding the locally cached KYC details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			// Changing an existing passcode requires the current one.
			if err := a.unlock(cmd); err != nil {
				return err
			}
			if err := cache.SetPasscode(cmd.Context(), a.store, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "passcode set")
			return nil
		},
	}
}
