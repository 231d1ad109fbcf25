package client

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/fragments"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/validators"
	"github.com/spf13/cobra"
)

func (a *App) newResolveCommand() *cobra.Command {
	var (
		paths     []string
		mergeMode string
	)

	cmd := &cobra.Command{
		Use:   "resolve [file...]",
		Short: "Resolve local configuration fragments and print the result",
		Long: `Resolve reads the given fragment files in order, names every entity and
merges the fragments exactly the way the server does at startup. No server
is contacted.`,
		Example: "  adminctl resolve -f config/admin.yaml -f config/admin_extra.yml -o yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := append(slices.Clone(paths), args...)
			if len(files) == 0 {
				return errNoFragments
			}

			backendConfigService, err := service.NewBackendConfigService(
				config.Backend{ConfigPaths: files, MergeMode: mergeMode},
				fragments.NewFileLoader(a.logger),
				validators.NewResolvedConfigValidator(),
				a.logger,
			)
			if err != nil {
				return err
			}

			resolved, err := backendConfigService.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			return a.printResolved(cmd.OutOrStdout(), resolved)
		},
	}

	cmd.Flags().StringArrayVarP(&paths, "file", "f", nil, "fragment file (.yaml, .yml or .json), repeatable")
	cmd.Flags().StringVar(&mergeMode, "merge-mode", config.DefaultMergeMode, "what equal names in different fragments do: rename or merge")

	return cmd
}

func (a *App) newEntitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entities a running server serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configService, err := a.configService()
			if err != nil {
				return err
			}

			entities, err := configService.Entities(cmd.Context())
			if err != nil {
				return err
			}

			return a.printEntities(cmd.OutOrStdout(), entities)
		},
	}
}

func (a *App) newEntityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entity <name>",
		Short: "Show one entity a running server serves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configService, err := a.configService()
			if err != nil {
				return err
			}

			entity, err := configService.Entity(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printEntity(cmd.OutOrStdout(), entity)
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the adminctl build and the version of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.info.String())

			configService, err := a.configService()
			if err != nil {
				return err
			}

			version, err := configService.ServerVersion(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", version)
			return nil
		},
	}
}
