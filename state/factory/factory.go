// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package factory

import (
	"context"
	"sync"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/advproject/adv-core/action/protocol"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/config"
	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/pkg/lifecycle"
	"github.com/advproject/adv-core/pkg/log"
	"github.com/advproject/adv-core/pkg/util/byteutil"
	"github.com/advproject/adv-core/state"
)

const (
	// AccountNamespace is the namespace to store accounts and the current height
	AccountNamespace = "Account"
	// VaultNamespace is the namespace to store vault and stake position records
	VaultNamespace = "Vault"
)

// CurrentHeightKey indicates the key of current factory height in the underlying DB
var CurrentHeightKey = []byte("currentHeight")

// Factory defines an interface for the committed state
type Factory interface {
	lifecycle.StartStopper

	// Height returns the height of the committed state
	Height() (uint64, error)
	// NewWorkingSet returns a working set to stage the writes of one operation
	NewWorkingSet() (*WorkingSet, error)
	// State reads a state from the committed state
	State(interface{}, ...protocol.StateOption) (uint64, error)
}

type factory struct {
	mutex         sync.RWMutex
	currentHeight uint64
	cfg           config.Config
	dao           db.KVStore
}

// NewFactory creates a new state factory atop the given KVStore
func NewFactory(cfg config.Config, dao db.KVStore) (Factory, error) {
	if dao == nil {
		return nil, errors.New("kvstore of the factory cannot be nil")
	}
	return &factory{
		cfg: cfg,
		dao: dao,
	}, nil
}

// Start starts the underlying KVStore and bootstraps the genesis state on first use
func (sf *factory) Start(ctx context.Context) error {
	sf.mutex.Lock()
	defer sf.mutex.Unlock()
	if err := sf.dao.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start the kvstore of the factory")
	}
	h, err := sf.dao.Get(AccountNamespace, CurrentHeightKey)
	switch errors.Cause(err) {
	case nil:
		sf.currentHeight = byteutil.BytesToUint64BigEndian(h)
		return nil
	case db.ErrNotExist, db.ErrBucketNotExist:
		return sf.createGenesisStates()
	default:
		return errors.Wrap(err, "failed to read the current height of the factory")
	}
}

// Stop stops the underlying KVStore
func (sf *factory) Stop(ctx context.Context) error {
	return sf.dao.Stop(ctx)
}

// Height returns the height of the committed state
func (sf *factory) Height() (uint64, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	return sf.currentHeight, nil
}

// NewWorkingSet returns a working set at the next height
func (sf *factory) NewWorkingSet() (*WorkingSet, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	return newWorkingSet(sf, sf.currentHeight+1), nil
}

// State reads a state from the committed state
func (sf *factory) State(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return 0, err
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = AccountNamespace
	}
	value, err := sf.dao.Get(ns, cfg.Key)
	switch errors.Cause(err) {
	case db.ErrNotExist, db.ErrBucketNotExist:
		return sf.currentHeight, errors.Wrapf(state.ErrStateNotExist, "ns = %x and key = %x", ns, cfg.Key)
	case nil:
		return sf.currentHeight, deserializeState(s, value)
	}
	return sf.currentHeight, err
}

// commit persists a working set's write queue atomically and advances the height
func (sf *factory) commit(ws *WorkingSet) error {
	sf.mutex.Lock()
	defer sf.mutex.Unlock()
	if ws.height != sf.currentHeight+1 {
		return errors.Errorf(
			"cannot commit working set at height %d, current height is %d", ws.height, sf.currentHeight,
		)
	}
	ws.flusher.Put(
		AccountNamespace, CurrentHeightKey, byteutil.Uint64ToBytesBigEndian(ws.height),
		"failed to put the current height",
	)
	if err := sf.dao.WriteBatch(ws.flusher); err != nil {
		return errors.Wrapf(err, "failed to commit working set at height %d", ws.height)
	}
	sf.currentHeight = ws.height
	return nil
}

// createGenesisStates credits the configured initial balances at height zero
func (sf *factory) createGenesisStates() error {
	ws := newWorkingSet(sf, 1)
	for addrStr, balance := range sf.cfg.Genesis.InitBalances {
		addr, err := address.FromString(addrStr)
		if err != nil {
			return errors.Wrapf(err, "failed to decode genesis address %s", addrStr)
		}
		acct, err := accountutil.LoadOrCreateAccount(ws, addr)
		if err != nil {
			return errors.Wrapf(err, "failed to create genesis account %s", addrStr)
		}
		if err := acct.AddBalance(balance); err != nil {
			return errors.Wrapf(err, "failed to credit genesis balance to %s", addrStr)
		}
		if err := accountutil.StoreAccount(ws, addr, acct); err != nil {
			return errors.Wrapf(err, "failed to store genesis account %s", addrStr)
		}
	}
	if err := sf.commitGenesis(ws); err != nil {
		return err
	}
	log.L().Info("Bootstrapped genesis states.", zap.Int("accounts", len(sf.cfg.Genesis.InitBalances)))
	return nil
}

func (sf *factory) commitGenesis(ws *WorkingSet) error {
	// the factory mutex is already held in Start
	ws.flusher.Put(
		AccountNamespace, CurrentHeightKey, byteutil.Uint64ToBytesBigEndian(0),
		"failed to put the current height",
	)
	if err := sf.dao.WriteBatch(ws.flusher); err != nil {
		return errors.Wrap(err, "failed to commit the genesis states")
	}
	sf.currentHeight = 0
	return nil
}
