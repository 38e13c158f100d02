package config

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config model and loader

const defaultEngineHost = "unix:///var/run/docker.sock"

type ConfigModel struct {
	Listen     string // http listen for the status front
	DockerHost string `mapstructure:"dockerhost"` // engine endpoint

	Timeout  time.Duration // per engine-call deadline
	PollFreq time.Duration // background refresh cadence (0 disables)

	MockEngine bool // serve seeded in-memory data instead of a live engine
	Verbose    bool // debug-level logging
}

var Model *ConfigModel = new(ConfigModel)

func Load() {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("listen", ":8123")
	viper.SetDefault("dockerhost", defaultEngineHost)
	viper.SetDefault("timeout", 30*time.Second)

	viper.SetEnvPrefix("dockside")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("dockerhost", "DOCKSIDE_DOCKERHOST", "DOCKER_HOST")

	// Config file is optional; defaults and env cover a bare run
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logrus.Fatal(err)
		}
	}

	if err := viper.Unmarshal(Model); err != nil {
		logrus.Fatal(err)
	}
}
