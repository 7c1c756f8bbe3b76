// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import (
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"

	"github.com/advproject/adv-core/pkg/util/byteutil"
)

// Action is the generic interface of all types of operations submitted to the ledger. The
// execution host has already verified the sender's signature by the time an action reaches
// a protocol, so SenderAddress is the authenticated actor identity.
type Action interface {
	// Version returns the version of the action
	Version() uint32
	// Nonce returns the nonce of the action
	Nonce() uint64
	// SenderAddress returns the verified sender of the action
	SenderAddress() address.Address
	// ByteStream returns the canonical byte representation of the action
	ByteStream() []byte
}

// Hash returns the hash of an action's canonical byte representation
func Hash(act Action) hash.Hash256 {
	return hash.Hash256b(act.ByteStream())
}

// AbstractAction is the base struct shared by all concrete actions
type AbstractAction struct {
	version uint32
	nonce   uint64
	srcAddr address.Address
}

// Version returns the version of the action
func (act *AbstractAction) Version() uint32 { return act.version }

// Nonce returns the nonce of the action
func (act *AbstractAction) Nonce() uint64 { return act.nonce }

// SenderAddress returns the verified sender of the action
func (act *AbstractAction) SenderAddress() address.Address { return act.srcAddr }

func (act *AbstractAction) basicByteStream() []byte {
	stream := byteutil.Uint32ToBytes(act.version)
	stream = append(stream, byteutil.Uint64ToBytes(act.nonce)...)
	if act.srcAddr != nil {
		stream = append(stream, act.srcAddr.Bytes()...)
	}
	return stream
}
