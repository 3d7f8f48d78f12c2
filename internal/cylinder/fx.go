package cylinder

import (
	"github.com/smallbiznis/gasdepot/internal/cylinder/repository"
	"github.com/smallbiznis/gasdepot/internal/cylinder/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cylinder.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
