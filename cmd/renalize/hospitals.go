package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hospitalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hospitals",
		Short: "List empanelled hospitals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			r := drain(cmd, a.hospitalsService().List(cmd.Context()))
			if r.IsError() {
				return fmt.Errorf("%s", r.Message())
			}

			list, _ := r.Value()
			out := cmd.OutOrStdout()
			for _, h := range list {
				fmt.Fprintf(out, "%s\n  %s\n  %s\n", h.Name, h.Address, h.ContactNumber)
			}
			return nil
		},
	}
}
