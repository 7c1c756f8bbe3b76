// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import "github.com/iotexproject/iotex-address/address"

const _createVaultPayloadID = byte(1)

// CreateVault is the operation that registers a vault owned by the sender. The vault's
// address is derived from the sender, so the action carries no payload of its own.
type CreateVault struct {
	AbstractAction
}

// NewCreateVault creates a CreateVault action
func NewCreateVault(nonce uint64, sender address.Address) *CreateVault {
	return &CreateVault{
		AbstractAction: AbstractAction{
			version: CurrentVersion,
			nonce:   nonce,
			srcAddr: sender,
		},
	}
}

// ByteStream returns the canonical byte representation of the action
func (cv *CreateVault) ByteStream() []byte {
	return append([]byte{_createVaultPayloadID}, cv.basicByteStream()...)
}
