package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/decisionlab/topsis/internal/config"
	"github.com/decisionlab/topsis/internal/mailer"
	"github.com/decisionlab/topsis/internal/webserver"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newServeCommand() *cobra.Command {
	var port int
	var configPath string
	var promptPassword bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the TOPSIS web form and JSON API server",
		Long: `Start the TOPSIS web form and JSON API server.

The form accepts a decision table upload (.csv or .xlsx), weights, impacts
and a recipient address; the ranked result is emailed to the recipient as a
CSV attachment. The same engine is exposed as JSON under POST /api/rank.

SMTP settings come from topsis.yaml and the SMTP_HOST, SMTP_PORT,
SMTP_USER, SMTP_PASS and SMTP_FROM environment variables. The server still
starts without them, but form submissions fail until they are set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			if promptPassword {
				pass, err := readPassword()
				if err != nil {
					return err
				}
				cfg.SMTP.Password = pass
			}

			var sender mailer.Sender
			client, err := mailer.New(mailer.Config{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				From:     cfg.SMTP.From,
			})
			switch {
			case err == nil:
				sender = client
			case errors.Is(err, mailer.ErrNotConfigured):
				slog.Warn("SMTP is not configured; form submissions will fail until credentials are set")
			default:
				return err
			}

			srv := webserver.New(webserver.Config{
				Port:   cfg.Server.Port,
				Mailer: sender,
				Logger: slog.Default(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config, default 5000)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to topsis.yaml (default: ./topsis.yaml)")
	cmd.Flags().BoolVar(&promptPassword, "prompt-smtp-pass", false, "Prompt for the SMTP password instead of reading SMTP_PASS")

	return cmd
}

// readPassword reads the SMTP password from the terminal without echo.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("cannot prompt for SMTP password: stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "SMTP password: ")
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading SMTP password: %w", err)
	}
	return string(pass), nil
}
