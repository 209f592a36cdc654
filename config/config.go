package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/ratnum/common"
	"github.com/MixinNetwork/ratnum/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultDecimalPlaces = common.DecimalPlaces
	MaximumDecimalPlaces = 64
)

type Custom struct {
	Format struct {
		FractionOnly  bool  `toml:"fraction-only"`
		DecimalPlaces int32 `toml:"decimal-places"`
	} `toml:"format"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Default() *Custom {
	var config Custom
	config.Format.DecimalPlaces = DefaultDecimalPlaces
	config.Log.Level = logger.INFO
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tree, err := toml.LoadBytes(f)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	// decimal-places = 0 is a valid setting, only a missing key gets the default
	if !tree.Has("format.decimal-places") {
		config.Format.DecimalPlaces = DefaultDecimalPlaces
	}
	if p := config.Format.DecimalPlaces; p < 0 || p > MaximumDecimalPlaces {
		return nil, fmt.Errorf("invalid decimal-places %d", p)
	}
	if config.Log.Level == 0 {
		config.Log.Level = logger.INFO
	}
	return &config, nil
}
