package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/events/bus"
	"github.com/zeusync/planetattack/internal/core/observability/log"
	"github.com/zeusync/planetattack/internal/core/world"
)

// ConfigPath is a YAML configuration file; empty selects the defaults.
type ConfigPath string

// App is everything a front end needs to drive a simulation.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Bus    bus.EventBus
	World  *world.World
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	ProvideWorld,
	wire.Struct(new(App), "*"),
)

func ProvideConfig(path ConfigPath) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.LoadFile(string(path))
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	return log.NewWithConfig(log.ParseLevel(cfg.Log.Level), cfg.Log.Encoding)
}

func ProvideWorld(cfg *config.Config, logger log.Log, b bus.EventBus) (*world.World, error) {
	return world.New(*cfg, world.WithLogger(logger), world.WithBus(b))
}
