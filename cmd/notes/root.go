package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sealnote/pkg/config"
	"github.com/dmitrymomot/sealnote/pkg/kdf"
	"github.com/dmitrymomot/sealnote/pkg/noteclient"
)

const defaultTimeout = 30 * time.Second

var errNoServer = errors.New("no server: pass --server or set NOTES_SERVER")

// cliConfig holds the environment defaults for the persistent flags.
type cliConfig struct {
	Server   string        `env:"NOTES_SERVER"`
	Context  string        `env:"NOTES_CONTEXT"`
	KDF      string        `env:"NOTES_KDF" envDefault:"scrypt"`
	Password string        `env:"NOTES_PASSWORD"` // skips the prompt, for scripts
	Timeout  time.Duration `env:"NOTES_TIMEOUT" envDefault:"30s"`
}

// app is the state shared by all subcommands.
type app struct {
	cfg     cliConfig
	envFile string
	noColor bool
	deriver kdf.Deriver
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "notes",
		Short: "Read and write an end-to-end encrypted note",
		Long: `notes talks to a notesd server. The note is encrypted and signed locally
with keys derived from your password; the server only stores ciphertext and
accepts a change when it is signed by the key it was configured with.

Run 'notes pubkey' once to get that key for NOTES_PUBLIC_KEY.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load NOTES_* variables from this file")
	flags.StringVarP(&a.cfg.Server, "server", "s", "", "notesd base URL (env NOTES_SERVER)")
	flags.StringVar(&a.cfg.Context, "context", "", "signing context, defaults to the server origin (env NOTES_CONTEXT)")
	flags.StringVar(&a.cfg.KDF, "kdf", "", "key derivation: scrypt or argon2id (env NOTES_KDF)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", 0, "request timeout (env NOTES_TIMEOUT)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newPubkeyCmd(a), newGetCmd(a), newPutCmd(a))
	return root
}

// load fills flags that were not given from the environment and an optional
// env file, then resolves the KDF.
func (a *app) load(cmd *cobra.Command) error {
	setColor(a.noColor)

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	var env cliConfig
	if err := config.ForceReload(&env); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("server") {
		a.cfg.Server = env.Server
	}
	if !flags.Changed("context") {
		a.cfg.Context = env.Context
	}
	if !flags.Changed("kdf") {
		a.cfg.KDF = env.KDF
	}
	if !flags.Changed("timeout") {
		a.cfg.Timeout = env.Timeout
	}
	if a.cfg.Timeout <= 0 {
		a.cfg.Timeout = defaultTimeout
	}
	a.cfg.Password = env.Password

	d, err := kdf.ByName(a.cfg.KDF)
	if err != nil {
		return err
	}
	a.deriver = d
	return nil
}

func (a *app) client() (*noteclient.Client, error) {
	if a.cfg.Server == "" {
		return nil, errNoServer
	}
	return noteclient.New(a.cfg.Server,
		noteclient.WithDeriver(a.deriver),
		noteclient.WithSigningContext(a.cfg.Context),
	)
}

// password returns NOTES_PASSWORD when set and prompts otherwise.
func (a *app) password(cmd *cobra.Command, prompt string) (string, error) {
	if a.cfg.Password != "" {
		return a.cfg.Password, nil
	}
	return readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
}

func printWriteError(w io.Writer, err error) {
	var writeErr *noteclient.WriteError
	if !errors.As(err, &writeErr) {
		return
	}
	fmt.Fprintln(w, warningText.Sprint("The server refused the write."))
	fmt.Fprintln(w, "Either the note changed since it was read, or the server trusts a different key.")
	fmt.Fprintf(w, "Your public key: %s\n", codeText.Sprint(writeErr.PublicKey))
	fmt.Fprintln(w, "Run 'notes get' and try again, or compare the key with NOTES_PUBLIC_KEY on the server.")
}
