package cli

import (
	"context"

	"github.com/spf13/cobra"

	"samm-registry/internal/app"
	"samm-registry/internal/printer"
	"samm-registry/internal/types"
)

func newDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file.ttl>",
		Short: "Detect the SAMM version a Turtle model is written against",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runDetect(ctx context.Context, path string) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	report, err := service.Detect(ctx, app.DetectRequest{Path: path})
	if err != nil {
		return err
	}
	if reportFormat() == types.ReportFormatText {
		printer.Success("%s uses samm %s\n", report.Path, report.Version)
	}
	return writeReport(service, report)
}
