// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package factory

import (
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/db/batch"
	"github.com/advproject/adv-core/state"
)

// WorkingSet stages the state writes of one operation. Reads see the pending writes first
// and fall back to the committed state; Commit applies the whole write queue as a single
// atomic batch, and a working set that is never committed leaves no trace.
type WorkingSet struct {
	height  uint64
	sf      *factory
	flusher batch.CachedBatch
}

func newWorkingSet(sf *factory, height uint64) *WorkingSet {
	return &WorkingSet{
		height:  height,
		sf:      sf,
		flusher: batch.NewCachedBatch(),
	}
}

// Height returns the target height of the working set
func (ws *WorkingSet) Height() (uint64, error) {
	return ws.height, nil
}

// State reads a state, pending writes shadowing the committed state
func (ws *WorkingSet) State(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.height, err
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = AccountNamespace
	}
	value, err := ws.flusher.Get(ns, cfg.Key)
	switch errors.Cause(err) {
	case nil:
		return ws.height, deserializeState(s, value)
	case batch.ErrAlreadyDeleted:
		return ws.height, errors.Wrapf(state.ErrStateNotExist, "ns = %x and key = %x", ns, cfg.Key)
	case batch.ErrNotExist:
		// fall through to the committed state
	default:
		return ws.height, err
	}
	value, err = ws.sf.dao.Get(ns, cfg.Key)
	switch errors.Cause(err) {
	case nil:
		return ws.height, deserializeState(s, value)
	case db.ErrNotExist, db.ErrBucketNotExist:
		return ws.height, errors.Wrapf(state.ErrStateNotExist, "ns = %x and key = %x", ns, cfg.Key)
	}
	return ws.height, err
}

// PutState stages a state write
func (ws *WorkingSet) PutState(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.height, err
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = AccountNamespace
	}
	value, err := state.Serialize(s)
	if err != nil {
		return ws.height, errors.Wrapf(err, "failed to convert account %v to bytes", s)
	}
	ws.flusher.Put(ns, cfg.Key, value, "failed to put state of ns = %x and key = %x", ns, cfg.Key)
	return ws.height, nil
}

// DelState stages a state deletion
func (ws *WorkingSet) DelState(opts ...protocol.StateOption) (uint64, error) {
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.height, err
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = AccountNamespace
	}
	ws.flusher.Delete(ns, cfg.Key, "failed to delete state of ns = %x and key = %x", ns, cfg.Key)
	return ws.height, nil
}

// Commit persists the staged writes atomically and advances the factory height
func (ws *WorkingSet) Commit() error {
	return ws.sf.commit(ws)
}

func deserializeState(s interface{}, value []byte) error {
	if err := state.Deserialize(s, value); err != nil {
		return errors.Wrapf(err, "error when deserializing state data into %T", s)
	}
	return nil
}
