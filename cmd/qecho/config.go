// Config loading for the qecho CLI. A config file supplies persistent
// defaults for the sweep parameters; flags always win over config, and
// config wins over the built-in defaults.
package main

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

const (
	configName = ".qecho"
	configType = "yaml"

	cfgKeyTheta   = "theta"
	cfgKeyFrom    = "from"
	cfgKeyTo      = "to"
	cfgKeySamples = "samples"
	cfgKeyWorkers = "workers"
)

// loadConfig reads .qecho.yaml via Viper from the explicit --config path
// or, failing that, from the working directory and $HOME. A missing
// config file is not an error: the built-in defaults describe the
// reference experiment (theta=π/3, 50 samples over [0, π]).
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyTheta, math.Pi/3)
	v.SetDefault(cfgKeyFrom, 0.0)
	v.SetDefault(cfgKeyTo, math.Pi)
	v.SetDefault(cfgKeySamples, 50)
	v.SetDefault(cfgKeyWorkers, 1)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file: run on built-in defaults.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
