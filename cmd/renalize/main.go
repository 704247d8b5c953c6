// Command renalize is the terminal client for the Renalize reimbursement
// service: KYC document verification, patient registration, claim submission
// and the bill passbook.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "renalize",
		Short:         "Renalize reimbursement client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "directory holding renalize.yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().String("passcode", "", "cache passcode, required once set with `renalize lock`")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(lockCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(kycCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(passbookCmd())
	rootCmd.AddCommand(claimCmd())
	rootCmd.AddCommand(hospitalsCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
