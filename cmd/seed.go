package cmd

import (
	"github.com/spf13/cobra"

	"tidsreg-be/internal/repository"
	"tidsreg-be/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations, seed users and projects, and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.migrate(ctx); err != nil {
			return err
		}
		if err := a.seed(ctx); err != nil {
			return err
		}

		refs := service.NewReferenceService(
			repository.NewUserRepository(a.db),
			repository.NewProjectRepository(a.db),
			a.connectCache(ctx), a.cfg.CacheTTL, a.log,
		)
		return refs.Invalidate(ctx)
	},
}
