// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import (
	"github.com/iotexproject/iotex-address/address"

	"github.com/advproject/adv-core/pkg/util/byteutil"
)

const _createStakePayloadID = byte(2)

// CreateStake is the operation that locks the sender's tokens in a vault for a fixed term.
type CreateStake struct {
	AbstractAction

	vault     string
	amount    uint64
	termYears uint8
}

// NewCreateStake creates a CreateStake action
func NewCreateStake(nonce uint64, sender address.Address, vault string, amount uint64, termYears uint8) *CreateStake {
	return &CreateStake{
		AbstractAction: AbstractAction{
			version: CurrentVersion,
			nonce:   nonce,
			srcAddr: sender,
		},
		vault:     vault,
		amount:    amount,
		termYears: termYears,
	}
}

// Vault returns the target vault address of the stake
func (cs *CreateStake) Vault() string { return cs.vault }

// Amount returns the amount of tokens to stake
func (cs *CreateStake) Amount() uint64 { return cs.amount }

// TermYears returns the lock term in years
func (cs *CreateStake) TermYears() uint8 { return cs.termYears }

// ByteStream returns the canonical byte representation of the action
func (cs *CreateStake) ByteStream() []byte {
	stream := append([]byte{_createStakePayloadID}, cs.basicByteStream()...)
	stream = append(stream, []byte(cs.vault)...)
	stream = append(stream, byteutil.Uint64ToBytes(cs.amount)...)
	return append(stream, cs.termYears)
}
