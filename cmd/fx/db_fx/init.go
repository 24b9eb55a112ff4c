package db_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
