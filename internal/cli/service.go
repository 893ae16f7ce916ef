package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/viper"

	"samm-registry/internal/app"
	"samm-registry/internal/printer"
	"samm-registry/internal/types"
)

// newAppService builds the service and applies the configured vocabulary
// overlay, if any.
func newAppService(ctx context.Context) (app.Service, error) {
	service, err := app.NewService(ctx)
	if err != nil {
		return app.Service{}, err
	}
	path := strings.TrimSpace(viper.GetString("vocabulary"))
	if path == "" {
		return service, nil
	}
	added, err := service.ApplyVocabulary(ctx, path)
	if err != nil {
		return app.Service{}, err
	}
	if added == 0 {
		printer.Warning("vocabulary %s added no prefixes\n", path)
	}
	return service, nil
}

func reportFormat() types.ReportFormat {
	return types.ReportFormat(strings.ToLower(strings.TrimSpace(viper.GetString("format"))))
}

func writeReport(service app.Service, report any) error {
	return service.WriteReport(os.Stdout, reportFormat(), report)
}
