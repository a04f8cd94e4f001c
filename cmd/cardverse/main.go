// Package main provides the cardverse binary: a command-line manager for
// trading-card collections and decks.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/version"
)

const appName = "cardverse"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Trading card collection and deck manager",
		Long: `Cardverse keeps a catalog of trading cards, the cards you own and
the decks you build from them.

Every command loads the saved state, performs one action and saves
the state again.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.flags.configPath, "config", "c", "", "Config file path (TOML, default ~/.cardverse/config.toml)")
	cmd.PersistentFlags().StringVar(&a.flags.statePath, "state", "", "State file path (JSON, default ~/.cardverse/state.json)")
	cmd.PersistentFlags().StringVar(&a.flags.catalogPath, "catalog", "", "Catalog file (.json, .yaml); the built-in sample catalog when empty")
	cmd.PersistentFlags().BoolVar(&a.flags.debug, "debug", false, "Enable debug logging")
	cmd.SetOut(out)

	cmd.AddCommand(
		catalogCmd(a),
		collectionCmd(a),
		deckCmd(a),
		transferCmd(a),
		selectCmd(a),
		seedCmd(a),
		watchCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			PersistentPreRunE: func(*cobra.Command, []string) error {
				return nil
			},
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(out, version.String(appName))
			},
		},
	)

	return cmd
}
