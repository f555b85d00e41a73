package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type DemoConfig struct {
	Rounds   int           `mapstructure:"rounds"`
	Interval time.Duration `mapstructure:"interval"`
	Metrics  bool          `mapstructure:"metrics"`
}

type Config struct {
	Demo DemoConfig `mapstructure:"demo"`
}

var conf = Config{
	Demo: DemoConfig{
		Rounds:  1,
		Metrics: true,
	},
}

// loadConfig reads the YAML file at path into conf and keeps watching it,
// reloading on change. An empty path keeps the defaults and no watcher.
func loadConfig(path string, onChange func(Config)) error {
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	viper.SetDefault("demo.rounds", conf.Demo.Rounds)
	viper.SetDefault("demo.interval", conf.Demo.Interval)
	viper.SetDefault("demo.metrics", conf.Demo.Metrics)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("viper read in config: %w", err)
	}
	if err := viper.Unmarshal(&conf); err != nil {
		return fmt.Errorf("viper unmarshal: %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(&conf); err != nil {
			log.Printf("config reload %s: %v", e.Name, err)
			return
		}
		if onChange != nil {
			onChange(conf)
		}
	})
	viper.WatchConfig()

	return nil
}
