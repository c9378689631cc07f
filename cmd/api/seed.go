package main

import (
	"beaticafe/internal/config"
	"beaticafe/internal/infra/catalogdata"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the embedded menu into postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			if e.cfg.CatalogSource != config.SourcePostgres {
				return errors.New("seed needs CATALOG_SOURCE=postgres")
			}
			st, err := openStores(e)
			if err != nil {
				return err
			}
			products, err := catalogdata.Products()
			if err != nil {
				return err
			}
			if err := seed(cmd.Context(), st.tx, products); err != nil {
				return err
			}
			e.log.Info("seeded", zap.Int("products", len(products)))
			return nil
		},
	}
}
