package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"renalize/internal/kyc"
	"renalize/internal/result"
	"renalize/internal/state"
)

func kycCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kyc <aadhar_front|aadhar_back|pan_card|bank_passbook> <file>",
		Short: "Upload and verify a KYC document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := kyc.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown document kind %q", args[0])
			}

			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.unlock(cmd); err != nil {
				return err
			}

			screen := state.NewKYCHolder()
			screen.Select(kind, filepath.Base(file.Name()))

			ctx := cmd.Context()
			screen.Bind(kind, a.kycService().VerifyDocument(ctx, kind, file))

			switch s := screen.Current().(type) {
			case state.KYCVerified:
				fmt.Fprintf(cmd.OutOrStdout(), "%s verified\n", s.Kind)
				return nil
			case state.KYCFailed:
				return fmt.Errorf("%s", s.Message)
			default:
				return fmt.Errorf("verification did not finish")
			}
		},
	}
}

// drain is a helper for commands that only need the terminal envelope.
func drain[T any](cmd *cobra.Command, stream *result.Stream[T]) result.Result[T] {
	return result.Await(cmd.Context(), stream)
}
