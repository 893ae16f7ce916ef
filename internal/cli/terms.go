package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"samm-registry/internal/app"
)

type termOptions struct {
	SammVersion string
	Standard    bool
}

func addSammVersionFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "samm-version", "", "SAMM version (v1, v2); defaults to the latest")
	_ = viper.BindPFlag("samm_version", cmd.Flags().Lookup("samm-version"))
}

func newExpandCommand() *cobra.Command {
	opts := termOptions{}
	cmd := &cobra.Command{
		Use:   "expand <prefix:name>...",
		Short: "Expand prefixed names to full URNs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd.Context(), cmd, opts, args)
		},
	}
	addSammVersionFlag(cmd, &opts.SammVersion)
	return cmd
}

func runExpand(ctx context.Context, cmd *cobra.Command, opts termOptions, terms []string) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	report, err := service.Expand(ctx, app.ExpandRequest{
		Version: resolveString(cmd, opts.SammVersion, "samm_version", "samm-version"),
		Terms:   terms,
	})
	if err != nil {
		return err
	}
	return writeReport(service, report)
}

func newCompactCommand() *cobra.Command {
	opts := termOptions{}
	cmd := &cobra.Command{
		Use:   "compact <uri>...",
		Short: "Compact full URNs to prefixed names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompact(cmd.Context(), cmd, opts, args)
		},
	}
	addSammVersionFlag(cmd, &opts.SammVersion)
	cmd.Flags().BoolVar(&opts.Standard, "standard", false, "Also use the standard rdf, rdfs and schema.org prefixes")
	_ = viper.BindPFlag("standard", cmd.Flags().Lookup("standard"))
	return cmd
}

func runCompact(ctx context.Context, cmd *cobra.Command, opts termOptions, uris []string) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	report, err := service.Compact(ctx, app.CompactRequest{
		Version:  resolveString(cmd, opts.SammVersion, "samm_version", "samm-version"),
		URIs:     uris,
		Standard: resolveBool(cmd, opts.Standard, "standard", "standard"),
	})
	if err != nil {
		return err
	}
	return writeReport(service, report)
}
