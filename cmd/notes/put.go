package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealnote/pkg/notecipher"
)

var errStdinPassword = errors.New("the note is read from stdin, so the password must come from NOTES_PASSWORD")

func newPutCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Replace the note with the contents of a file",
		Long: `Encrypts the file and replaces the note. Use "-" to read the note from
stdin, in which case the password must come from NOTES_PASSWORD.

The current note is decrypted first so a wrong password is caught before
anything is sent. Pass --force to overwrite a note that does not decrypt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			if args[0] == "-" && a.cfg.Password == "" {
				return errStdinPassword
			}

			text, err := readNote(cmd, args[0])
			if err != nil {
				return err
			}
			password, err := a.password(cmd, "Password: ")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			stop := startSpinner(cmd.ErrOrStderr(), "Encrypting...")
			_, err = c.Load(ctx, password)
			if err != nil && !(force && errors.Is(err, notecipher.ErrDecryptionFailed)) {
				stop()
				return err
			}
			err = c.Save(ctx, text, password)
			stop()
			if err != nil {
				printWriteError(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successText.Sprint("Note saved."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite even if the current note does not decrypt")
	return cmd
}

func readNote(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(b), nil
}
