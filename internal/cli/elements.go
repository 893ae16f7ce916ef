package cli

import (
	"context"

	"github.com/spf13/cobra"

	"samm-registry/internal/app"
)

type listOptions struct {
	SammVersion string
}

func newElementsCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List the indexed meta-model elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runElements(cmd.Context(), cmd, opts)
		},
	}
	addSammVersionFlag(cmd, &opts.SammVersion)
	return cmd
}

// An unset version lists every registered version, so only an explicit
// flag narrows the listing.
func runElements(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	report, err := service.Elements(ctx, app.ElementsRequest{
		Version: resolveString(cmd, opts.SammVersion, "samm_version", "samm-version"),
	})
	if err != nil {
		return err
	}
	return writeReport(service, report)
}

func newNamespacesCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "namespaces",
		Short: "List the prefixes a SAMM version declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNamespaces(cmd.Context(), cmd, opts)
		},
	}
	addSammVersionFlag(cmd, &opts.SammVersion)
	return cmd
}

func runNamespaces(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	report, err := service.Namespaces(ctx, app.NamespacesRequest{
		Version: resolveString(cmd, opts.SammVersion, "samm_version", "samm-version"),
	})
	if err != nil {
		return err
	}
	return writeReport(service, report)
}
