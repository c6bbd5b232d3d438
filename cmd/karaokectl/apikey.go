package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/karaoke-backend/internal/auth"
)

func newAPIKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "API key utilities",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Mint a key and print its plaintext, stored hash and display prefix",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				k, err := auth.GenerateAPIKey()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "key:    %s\n", k.Plaintext)
				fmt.Fprintf(out, "hash:   %s\n", k.Hash)
				fmt.Fprintf(out, "prefix: %s\n", k.DisplayPrefix)
				return nil
			},
		},
		&cobra.Command{
			Use:   "hash <key>",
			Short: "Print the stored digest of a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !auth.WellFormedAPIKey(args[0]) {
					return errors.New("not a well-formed API key")
				}
				fmt.Fprintln(cmd.OutOrStdout(), auth.HashToken(args[0]))
				return nil
			},
		},
	)
	return cmd
}
