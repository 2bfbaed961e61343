package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealnote/pkg/notecipher"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the decrypted note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			password, err := a.password(cmd, "Password: ")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			stop := startSpinner(cmd.ErrOrStderr(), "Decrypting...")
			text, err := c.Load(ctx, password)
			stop()
			if errors.Is(err, notecipher.ErrDecryptionFailed) {
				return fmt.Errorf("%w: wrong password, or the note was tampered with", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
