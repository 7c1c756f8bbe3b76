// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/advproject/adv-core/db/batch"
	"github.com/advproject/adv-core/pkg/lifecycle"
)

var (
	// ErrBucketNotExist indicates the bucket has not been created yet
	ErrBucketNotExist = errors.New("bucket does not exist")
	// ErrNotExist indicates the key does not exist
	ErrNotExist = errors.New("key does not exist")
	// ErrIO indicates a DB I/O operation error
	ErrIO = errors.New("DB I/O operation error")
)

// KVStore is a <namespace, key, value> store, where a write batch is applied as a single
// atomic write.
type KVStore interface {
	lifecycle.StartStopper

	// Put inserts a <key, value> record into the namespace
	Put(string, []byte, []byte) error
	// Get retrieves a record by (namespace, key)
	Get(string, []byte) ([]byte, error)
	// Delete deletes a record by (namespace, key)
	Delete(string, []byte) error
	// WriteBatch commits a batch into the underlying DB atomically
	WriteBatch(batch.KVStoreBatch) error
}

// memKVStore is the in-memory implementation of KVStore for testing purpose
type memKVStore struct {
	mutex  sync.RWMutex
	bucket map[string]struct{}
	data   map[string][]byte
}

const _keyDelimiter = "."

// NewMemKVStore instantiates an in-memory KV store
func NewMemKVStore() KVStore {
	return &memKVStore{
		bucket: make(map[string]struct{}),
		data:   make(map[string][]byte),
	}
}

func (m *memKVStore) Start(_ context.Context) error { return nil }

func (m *memKVStore) Stop(_ context.Context) error { return nil }

// Put inserts a <key, value> record
func (m *memKVStore) Put(namespace string, key, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.put(namespace, key, value)
	return nil
}

// Get retrieves a record
func (m *memKVStore) Get(namespace string, key []byte) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if _, ok := m.bucket[namespace]; !ok {
		return nil, errors.Wrapf(ErrBucketNotExist, "namespace = %s doesn't exist", namespace)
	}
	value, ok := m.data[namespace+_keyDelimiter+string(key)]
	if !ok {
		return nil, errors.Wrapf(ErrNotExist, "key = %x doesn't exist", key)
	}
	return value, nil
}

// Delete deletes a record
func (m *memKVStore) Delete(namespace string, key []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.data, namespace+_keyDelimiter+string(key))
	return nil
}

// WriteBatch commits a batch
func (m *memKVStore) WriteBatch(kvsb batch.KVStoreBatch) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	kvsb.Lock()
	defer kvsb.ClearAndUnlock()
	for i := 0; i < kvsb.Size(); i++ {
		write, err := kvsb.Entry(i)
		if err != nil {
			return err
		}
		switch write.WriteType() {
		case batch.Put:
			m.put(write.Namespace(), write.Key(), write.Value())
		case batch.Delete:
			delete(m.data, write.Namespace()+_keyDelimiter+string(write.Key()))
		}
	}
	return nil
}

func (m *memKVStore) put(namespace string, key, value []byte) {
	m.bucket[namespace] = struct{}{}
	m.data[namespace+_keyDelimiter+string(key)] = value
}
