package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-config/internal/client"
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	adapterCfg, err := config.GetAdapterConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), adapterCfg)
	if err = app.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
