package cli

import (
	"context"

	"github.com/spf13/cobra"

	"samm-registry/internal/app"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <prefix:name|urn>",
		Short: "Resolve a meta-model element across every SAMM version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), args[0])
		},
	}
}

func runLookup(ctx context.Context, term string) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	entry, err := service.Lookup(ctx, app.LookupRequest{Term: term})
	if err != nil {
		return err
	}
	return writeReport(service, entry)
}
