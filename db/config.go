// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

// Config is the config for the DB layer
type Config struct {
	// DbPath is the path of the database file; empty path selects the in-memory store
	DbPath string `yaml:"dbPath"`
	// NumRetries is the number of retries for a failed write
	NumRetries uint8 `yaml:"numRetries"`
}

// DefaultConfig returns the default config of the DB layer
var DefaultConfig = Config{
	DbPath:     "",
	NumRetries: 3,
}

// CreateKVStore creates a KVStore according to the config
func CreateKVStore(cfg Config) KVStore {
	if cfg.DbPath == "" {
		return NewMemKVStore()
	}
	return NewBoltDB(cfg)
}
