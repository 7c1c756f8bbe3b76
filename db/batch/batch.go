// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNotExist indicates the key does not exist in the batch
	ErrNotExist = errors.New("key does not exist")
	// ErrAlreadyDeleted indicates the key has been deleted in the batch
	ErrAlreadyDeleted = errors.New("key has been deleted")
	// ErrOutOfBound indicates an out-of-range access to the write queue
	ErrOutOfBound = errors.New("index out of range")
)

type (
	// KVStoreBatch defines a batch buffer that stages Put/Delete entries in sequential order.
	// To use it, start a new batch, keep staging Put/Delete operations into it, and finally hand
	// it to KVStore.WriteBatch to persist to the underlying DB in one atomic write.
	KVStoreBatch interface {
		// Lock locks the batch
		Lock()
		// Unlock unlocks the batch
		Unlock()
		// ClearAndUnlock clears the write queue and unlocks the batch
		ClearAndUnlock()
		// Put inserts or updates a record identified by (namespace, key)
		Put(string, []byte, []byte, string, ...interface{})
		// Delete deletes a record by (namespace, key)
		Delete(string, []byte, string, ...interface{})
		// Size returns the size of the batch
		Size() int
		// Entry returns the entry at the index
		Entry(int) (*WriteInfo, error)
		// Clear clears entries staged in the batch
		Clear()
	}

	// CachedBatch adds a local cache atop KVStoreBatch to provide fast retrieval of pending
	// Put/Delete entries
	CachedBatch interface {
		KVStoreBatch
		// Get retrieves a record by (namespace, key); ErrNotExist means the batch holds no
		// pending write for the key, ErrAlreadyDeleted means the pending write is a deletion
		Get(string, []byte) ([]byte, error)
	}

	baseKVStoreBatch struct {
		mutex      sync.RWMutex
		writeQueue []*WriteInfo
	}

	cachedBatch struct {
		*baseKVStoreBatch
		cache map[string][]byte
	}
)

// NewBatch returns a batch
func NewBatch() KVStoreBatch {
	return &baseKVStoreBatch{}
}

// NewCachedBatch returns a new cached batch buffer
func NewCachedBatch() CachedBatch {
	return &cachedBatch{
		baseKVStoreBatch: &baseKVStoreBatch{},
		cache:            make(map[string][]byte),
	}
}

func (b *baseKVStoreBatch) Lock() {
	b.mutex.Lock()
}

func (b *baseKVStoreBatch) Unlock() {
	b.mutex.Unlock()
}

func (b *baseKVStoreBatch) ClearAndUnlock() {
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

// Put inserts a <key, value> record
func (b *baseKVStoreBatch) Put(namespace string, key, value []byte, errorFormat string, errorArgs ...interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.batch(Put, namespace, key, value, errorFormat, errorArgs...)
}

// Delete deletes a record
func (b *baseKVStoreBatch) Delete(namespace string, key []byte, errorFormat string, errorArgs ...interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.batch(Delete, namespace, key, nil, errorFormat, errorArgs...)
}

// Size returns the size of the batch. The caller of a store's WriteBatch already holds
// the batch lock while draining the queue, so no locking here.
func (b *baseKVStoreBatch) Size() int {
	return len(b.writeQueue)
}

// Entry returns the entry at the index
func (b *baseKVStoreBatch) Entry(index int) (*WriteInfo, error) {
	if index < 0 || index >= len(b.writeQueue) {
		return nil, ErrOutOfBound
	}
	return b.writeQueue[index], nil
}

// Clear clears the write queue
func (b *baseKVStoreBatch) Clear() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

// batch puts an entry into the write queue
func (b *baseKVStoreBatch) batch(op WriteType, namespace string, key, value []byte, errorFormat string, errorArgs ...interface{}) {
	b.writeQueue = append(b.writeQueue, NewWriteInfo(op, namespace, key, value, errorFormat, errorArgs...))
}

// Put inserts a <key, value> record into both the write queue and the cache
func (cb *cachedBatch) Put(namespace string, key, value []byte, errorFormat string, errorArgs ...interface{}) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.cache[cacheKey(namespace, key)] = value
	cb.batch(Put, namespace, key, value, errorFormat, errorArgs...)
}

// Delete deletes a record and leaves a tombstone in the cache
func (cb *cachedBatch) Delete(namespace string, key []byte, errorFormat string, errorArgs ...interface{}) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.cache[cacheKey(namespace, key)] = nil
	cb.batch(Delete, namespace, key, nil, errorFormat, errorArgs...)
}

// Get retrieves a pending record
func (cb *cachedBatch) Get(namespace string, key []byte) ([]byte, error) {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	v, ok := cb.cache[cacheKey(namespace, key)]
	if !ok {
		return nil, ErrNotExist
	}
	if v == nil {
		return nil, ErrAlreadyDeleted
	}
	return v, nil
}

// ClearAndUnlock clears the write queue and the cache, and unlocks the batch
func (cb *cachedBatch) ClearAndUnlock() {
	defer cb.mutex.Unlock()
	cb.writeQueue = nil
	cb.cache = make(map[string][]byte)
}

// Clear clears the write queue and the cache
func (cb *cachedBatch) Clear() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.writeQueue = nil
	cb.cache = make(map[string][]byte)
}

func cacheKey(namespace string, key []byte) string {
	return namespace + "." + string(key)
}
