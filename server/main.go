// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Usage:
//   go build -o bin/server ./server
//   ./bin/server -config=./config.yaml

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/action/protocol/account"
	"github.com/advproject/adv-core/action/protocol/vault"
	"github.com/advproject/adv-core/config"
	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/ledger"
	"github.com/advproject/adv-core/pkg/log"
	"github.com/advproject/adv-core/state/factory"
)

var _configFile = flag.String("config", "", "specify configuration file path")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: server -config=[string]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
}

func main() {
	var paths []string
	if *_configFile != "" {
		paths = append(paths, *_configFile)
	}
	cfg, err := config.New(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load the config: %v\n", err)
		os.Exit(1)
	}
	if err := log.InitLoggers(cfg.Log, nil); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init the loggers: %v\n", err)
		os.Exit(1)
	}

	sf, err := factory.NewFactory(cfg, db.CreateKVStore(cfg.DB))
	if err != nil {
		log.L().Fatal("Failed to create the state factory.", zap.Error(err))
	}
	registry := protocol.NewRegistry()
	if err := account.NewProtocol().Register(registry); err != nil {
		log.L().Fatal("Failed to register the account protocol.", zap.Error(err))
	}
	if err := vault.NewProtocol().Register(registry); err != nil {
		log.L().Fatal("Failed to register the vault protocol.", zap.Error(err))
	}

	l := ledger.New(sf, registry)
	ctx := context.Background()
	if err := l.Start(ctx); err != nil {
		log.L().Fatal("Failed to start the ledger.", zap.Error(err))
	}
	height, err := sf.Height()
	if err != nil {
		log.L().Fatal("Failed to read the ledger height.", zap.Error(err))
	}
	log.L().Info("Ledger started.", zap.Uint64("height", height), zap.String("dbPath", cfg.DB.DbPath))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	if err := l.Stop(ctx); err != nil {
		log.L().Error("Failed to stop the ledger.", zap.Error(err))
	}
}
