package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"renalize/internal/claims"
	"renalize/internal/result"
)

func claimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <file> [file...]",
		Short: "Submit bill documents as an expense claim",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]claims.Document, 0, len(args))
			for _, path := range args {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				docs = append(docs, claims.Document{
					Name:    filepath.Base(path),
					Content: file,
				})
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := a.claimsService()
			ctx := cmd.Context()

			var stream *result.Stream[result.Unit]
			if len(docs) == 1 {
				stream = svc.Submit(ctx, docs[0])
			} else {
				stream = svc.SubmitBatch(ctx, docs)
			}

			r := drain(cmd, stream)
			if r.IsError() {
				return fmt.Errorf("%s", r.Message())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "claim submitted (%d documents)\n", len(docs))
			return nil
		},
	}
	return cmd
}
