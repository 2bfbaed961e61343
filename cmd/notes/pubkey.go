package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealnote/pkg/noteclient"
	"github.com/dmitrymomot/sealnote/pkg/qrcode"
	"github.com/dmitrymomot/sealnote/pkg/signing"
)

func newPubkeyCmd(a *app) *cobra.Command {
	var (
		showQR  bool
		pngPath string
	)

	cmd := &cobra.Command{
		Use:   "pubkey [context]",
		Short: "Derive the public key to configure notesd with",
		Long: `Derives the Ed25519 public key for a password. The context is the origin
clients use to reach the server, e.g. https://notes.example.com. It defaults to
--context, then to the origin of --server.

Set the printed key as NOTES_PUBLIC_KEY on the server.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signingContext, err := a.signingContext(args)
			if err != nil {
				return err
			}

			password, err := a.password(cmd, "Password: ")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Deriving key...")
			kp := signing.NewAuthority(a.deriver).DeriveKeypair(signingContext, password)
			stop()
			pub := kp.PublicKeyHex()

			out := cmd.OutOrStdout()
			fmt.Fprintln(cmd.ErrOrStderr(), "Public key for", codeText.Sprint(signingContext)+":")
			fmt.Fprintln(out, pub)

			if showQR {
				qr, err := qrcode.Terminal(pub, false)
				if err != nil {
					return err
				}
				fmt.Fprint(out, qr)
			}
			if pngPath != "" {
				png, err := qrcode.Generate(pub, 0)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pngPath, png, 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), successText.Sprint("QR code written to ")+pngPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showQR, "qr", false, "also print the key as a QR code")
	cmd.Flags().StringVar(&pngPath, "png", "", "write the key as a QR code PNG to this file")
	return cmd
}

// signingContext picks the argument, then --context, then the server origin.
func (a *app) signingContext(args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg.Context != "" {
		return a.cfg.Context, nil
	}
	if a.cfg.Server == "" {
		return "", errNoServer
	}
	u, err := url.Parse(a.cfg.Server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", noteclient.ErrInvalidBaseURL, a.cfg.Server)
	}
	return noteclient.Origin(u), nil
}
