package client

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var outputFormats = []string{outputTable, outputJSON, outputYAML}

type configServiceFactory func(cfg config.Adapter, logger *logger.Logger) (service.ClientConfigService, error)

// App is the adminctl command tree.
type App struct {
	root *cobra.Command
	info models.AppBuildInfo

	adapterCfg config.Adapter
	output     string
	verbose    bool

	newConfigService configServiceFactory

	logger *logger.Logger
}

// NewApp builds the command tree. adapterCfg supplies the defaults of the
// --addr and --timeout flags.
func NewApp(info models.AppBuildInfo, adapterCfg config.Adapter) *App {
	a := &App{
		info:             info,
		adapterCfg:       adapterCfg,
		newConfigService: newRemoteConfigService,
		logger:           logger.Nop(),
	}

	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Inspect the admin backend entity configuration",
		Long: `adminctl resolves admin backend configuration fragments into the final
entity configuration, or inspects the configuration a running server serves.`,
		Version:           info.BuildVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate(info.String())

	flags := root.PersistentFlags()
	flags.StringVar(&a.adapterCfg.HTTPAddress, "addr", adapterCfg.HTTPAddress, "address of the admin configuration server")
	flags.DurationVar(&a.adapterCfg.RequestTimeout, "timeout", adapterCfg.RequestTimeout, "timeout of a single request to the server")
	flags.StringVarP(&a.output, "output", "o", outputTable, "output format: table, json or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log what adminctl is doing to stderr")

	root.AddCommand(
		a.newResolveCommand(),
		a.newEntitiesCommand(),
		a.newEntityCommand(),
		a.newVersionCommand(),
	)

	a.root = root
	return a
}

// Run executes the command selected by the process arguments.
func (a *App) Run(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(outputFormats, a.output) {
		return errUnknownOutputFormat
	}

	a.logger = logger.NewConsoleLogger("adminctl", cmd.ErrOrStderr(), a.verbose)
	return nil
}

func (a *App) configService() (service.ClientConfigService, error) {
	a.logger.Debug().Str("addr", a.adapterCfg.HTTPAddress).Msg("connecting to admin configuration server")
	return a.newConfigService(a.adapterCfg, a.logger)
}

func newRemoteConfigService(cfg config.Adapter, logger *logger.Logger) (service.ClientConfigService, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, logger)
	if err != nil {
		return nil, err
	}

	clientServices, err := service.NewClientServices(serverAdapter)
	if err != nil {
		return nil, err
	}

	return clientServices.ConfigService, nil
}
