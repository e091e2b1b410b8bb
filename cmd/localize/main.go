// Command localize verifies gettext catalog trees against a language
// registry, reporting per-language load status.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "localize",
		Short:         "gettext catalog tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newVerifyCmd())
	return root
}

func newVerifyCmd() *cobra.Command {
	var (
		dir      string
		domain   string
		registry string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Load every registered catalog and report failures",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			svc, err := localize.New(
				localize.WithCatalogDir(dir),
				localize.WithDomain(domain),
				localize.WithRegistryFile(registry),
				localize.WithLogger(log),
			)
			if err != nil {
				return err
			}

			loadErr := svc.Load(cmd.Context())
			for _, code := range svc.Languages() {
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\t%s\n", code, svc.Locale(code).Name())
			}
			return loadErr
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "i18n", "catalog directory (<dir>/<code>/LC_MESSAGES/<domain>.po)")
	cmd.Flags().StringVar(&domain, "domain", localize.DefaultDomain, "gettext domain")
	cmd.Flags().StringVar(&registry, "registry", "", "YAML language registry file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = cmd.MarkFlagRequired("registry")

	return cmd
}
