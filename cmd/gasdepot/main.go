package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/gasdepot/internal/config"
	"github.com/smallbiznis/gasdepot/internal/migration"
	"github.com/smallbiznis/gasdepot/internal/observability"
	"github.com/smallbiznis/gasdepot/internal/server"
	"github.com/smallbiznis/gasdepot/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
