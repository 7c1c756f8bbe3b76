// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package protocol

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/advproject/adv-core/pkg/log"
)

// Registry is the hub of all protocols deployed on the ledger
type Registry struct {
	ids       []string
	mu        sync.RWMutex
	protocols sync.Map
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register registers the protocol with a unique ID
func (r *Registry) Register(id string, p Protocol) error {
	_, loaded := r.protocols.LoadOrStore(id, p)
	if loaded {
		return errors.Errorf("protocol with ID %s is already registered", id)
	}
	r.mu.Lock()
	r.ids = append(r.ids, id)
	r.mu.Unlock()
	return nil
}

// ForceRegister registers the protocol with a unique ID and force replacing the previous protocol if it exists
func (r *Registry) ForceRegister(id string, p Protocol) error {
	_, loaded := r.protocols.LoadOrStore(id, p)
	if loaded {
		r.protocols.Store(id, p)
		return nil
	}
	r.mu.Lock()
	r.ids = append(r.ids, id)
	r.mu.Unlock()
	return nil
}

// Find finds a protocol by ID
func (r *Registry) Find(id string) (Protocol, bool) {
	value, ok := r.protocols.Load(id)
	if !ok {
		return nil, false
	}
	p, ok := value.(Protocol)
	if !ok {
		log.S().Panic("Registry stores the item which is not a protocol")
	}
	return p, true
}

// All returns all protocols in their registration order
func (r *Registry) All() []Protocol {
	r.mu.RLock()
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	r.mu.RUnlock()

	all := make([]Protocol, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.Find(id); ok {
			all = append(all, p)
		}
	}
	return all
}
