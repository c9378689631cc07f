package main

import (
	"context"

	"beaticafe/internal/cart"
	"beaticafe/internal/config"
	"beaticafe/internal/domain/model"
	"beaticafe/internal/infra/catalogdata"
	"beaticafe/internal/infra/db"
	infraRepo "beaticafe/internal/infra/repository"
	"beaticafe/internal/repository"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stores are the repositories for the configured CATALOG_SOURCE.
type stores struct {
	products repository.ProductRepository
	users    repository.UserRepository
	contacts repository.ContactRepository
	tx       repository.TransactionManager // nil in memory mode
}

func openStores(e *env) (*stores, error) {
	switch e.cfg.CatalogSource {
	case config.SourcePostgres:
		gormDB, err := openDB(e)
		if err != nil {
			return nil, err
		}
		return &stores{
			products: infraRepo.NewProductGormRepository(gormDB),
			users:    infraRepo.NewUserGormRepository(gormDB),
			contacts: infraRepo.NewContactGormRepository(gormDB),
			tx:       infraRepo.NewTxManagerGorm(gormDB),
		}, nil
	default:
		products, err := catalogdata.Products()
		if err != nil {
			return nil, err
		}
		return &stores{
			products: infraRepo.NewProductMemoryRepository(products),
			users:    infraRepo.NewUserMemoryRepository(),
			contacts: infraRepo.NewContactMemoryRepository(),
		}, nil
	}
}

func openDB(e *env) (*gorm.DB, error) {
	gormDB, err := db.Connect(!e.cfg.IsProd() && e.cfg.LogLevel == "debug")
	if err != nil {
		return nil, errors.Wrap(err, "connect db")
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}
	return gormDB, nil
}

// seed upserts the embedded menu in one transaction.
func seed(ctx context.Context, tx repository.TransactionManager, products []model.Product) error {
	return tx.WithinTx(ctx, func(r repository.TxRepos) error {
		for _, p := range products {
			if err := r.Products().Upsert(ctx, p); err != nil {
				return errors.Wrapf(err, "upsert %s", p.ID)
			}
		}
		return nil
	})
}

// cartLogger reports cart changes at debug level.
func cartLogger(log *zap.Logger) cart.Listener {
	return func(sessionID string, snap cart.Snapshot) {
		log.Debug("cart changed",
			zap.String("user_id", sessionID),
			zap.Int("items", snap.TotalItems),
			zap.String("total", snap.TotalPrice.StringFixed(2)),
			zap.Bool("open", snap.Open),
		)
	}
}
