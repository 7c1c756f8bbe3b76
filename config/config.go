// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"github.com/pkg/errors"
	uconfig "go.uber.org/config"

	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/pkg/log"
)

// Default is the default config
var Default = Config{
	DB:  db.DefaultConfig,
	Log: log.GlobalConfig{},
	Genesis: Genesis{
		InitBalances: make(map[string]uint64),
	},
}

type (
	// Genesis is the config for bootstrapping the initial token distribution
	Genesis struct {
		InitBalances map[string]uint64 `yaml:"initBalances"`
	}

	// Config is the root config struct, each package defines its own config structure
	Config struct {
		DB      db.Config        `yaml:"db"`
		Log     log.GlobalConfig `yaml:"log"`
		Genesis Genesis          `yaml:"genesis"`
	}
)

// New creates a config instance. It first loads the default configs, and then overwrites
// them with the given yaml config files in order.
func New(paths ...string) (Config, error) {
	opts := make([]uconfig.YAMLOption, 0, len(paths)+1)
	opts = append(opts, uconfig.Static(Default))
	for _, path := range paths {
		opts = append(opts, uconfig.File(path))
	}
	yaml, err := uconfig.NewYAML(opts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to init config")
	}

	var cfg Config
	if err := yaml.Get(uconfig.Root).Populate(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal yaml config to struct")
	}
	return cfg, nil
}
