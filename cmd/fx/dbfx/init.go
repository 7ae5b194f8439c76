package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/infra"
	"mapsplanner/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}
