package sales

import (
	"github.com/smallbiznis/gasdepot/internal/sales/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sales.service",
	fx.Provide(service.New),
)
