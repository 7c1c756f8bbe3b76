// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package log provides a global logger for the whole process, with optional named sub loggers.
//
// By default, the global logger is a development zap logger writing to stdout. InitLoggers replaces
// it (and registers sub loggers) according to the configuration, typically once at process start.
package log

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GlobalConfig defines the global logger configurations.
type GlobalConfig struct {
	Zap            *zap.Config `json:"zap" yaml:"zap"`
	StdLogRedirect bool        `json:"stdLogRedirect" yaml:"stdLogRedirect"`
}

var (
	_logMu      sync.RWMutex
	_logger     *zap.Logger
	_sugar      *zap.SugaredLogger
	_subLoggers map[string]*zap.Logger
)

func init() {
	l, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		panic("failed to initialize the default logger")
	}
	_logger = l
	_sugar = l.Sugar()
	_subLoggers = make(map[string]*zap.Logger)
}

// L wraps the global logger.
func L() *zap.Logger {
	_logMu.RLock()
	l := _logger
	_logMu.RUnlock()
	return l
}

// S wraps the sugared global logger.
func S() *zap.SugaredLogger {
	_logMu.RLock()
	s := _sugar
	_logMu.RUnlock()
	return s
}

// Logger returns the sub logger of the given name, or the global logger if no sub logger is registered
// under the name.
func Logger(name string) *zap.Logger {
	_logMu.RLock()
	defer _logMu.RUnlock()
	if l, ok := _subLoggers[name]; ok {
		return l
	}
	return _logger
}

// InitLoggers initializes the global logger and the named sub loggers.
func InitLoggers(globalCfg GlobalConfig, subCfgs map[string]GlobalConfig, opts ...zap.Option) error {
	if _, exists := subCfgs[""]; exists {
		return errors.New("empty string is a reserved name for the global logger")
	}
	cfgs := make(map[string]GlobalConfig)
	for name, cfg := range subCfgs {
		cfgs[name] = cfg
	}
	cfgs[""] = globalCfg

	_logMu.Lock()
	defer _logMu.Unlock()
	for name, cfg := range cfgs {
		zapCfg := cfg.Zap
		if zapCfg == nil {
			c := zap.NewProductionConfig()
			zapCfg = &c
		}
		logger, err := zapCfg.Build(opts...)
		if err != nil {
			return errors.Wrapf(err, "failed to build logger %q", name)
		}
		if name == "" {
			_logger = logger
			_sugar = logger.Sugar()
			if cfg.StdLogRedirect {
				zap.RedirectStdLog(logger)
			}
			continue
		}
		_subLoggers[name] = logger.With(zap.String("name", name))
	}
	return nil
}
