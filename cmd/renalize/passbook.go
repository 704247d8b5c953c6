package main

import (
	"fmt"

	"github.com/spf13/cobra"

	api "renalize/contracts/api"
	"renalize/internal/state"
)

func passbookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passbook",
		Short: "Show the bill history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			screen := state.NewPassbookHolder()
			screen.Bind(a.passbookService().History(cmd.Context()))

			switch s := screen.Current().(type) {
			case state.PassbookLoaded:
				printBills(cmd, s.Bills)
				return nil
			case state.PassbookFailed:
				return fmt.Errorf("%s", s.Message)
			default:
				return fmt.Errorf("fetch did not finish")
			}
		},
	}
}

func printBills(cmd *cobra.Command, bills []api.Bill) {
	out := cmd.OutOrStdout()
	if len(bills) == 0 {
		fmt.Fprintln(out, "no bills filed yet")
		return
	}
	for _, bill := range bills {
		fmt.Fprintf(out, "%s  %-12s  %10.2f  %-8s  %s\n",
			bill.Date, bill.Type, bill.Amount, bill.Status, bill.Reasoning)
	}
}
