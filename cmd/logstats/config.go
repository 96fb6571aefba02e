package main

import "github.com/charmkit/logstats/internal/cleaner"

const (
	defaultShowMemory  = true
	defaultMaxLineSize = cleaner.DefaultMaxLineSize
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	CharmFilter string `mapstructure:"charm-filter"`
	Color       bool   `mapstructure:"color"`
	Verbose     bool   `mapstructure:"verbose"`
	ShowMemory  bool   `mapstructure:"show-memory"`
	MaxLineSize int    `mapstructure:"max-line-size"`
	LogFile     string `mapstructure:"-"` // positional argument, never from config
	ConfigPath  string `mapstructure:"-"` // not from config file
}
