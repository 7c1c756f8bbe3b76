// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import "github.com/iotexproject/iotex-address/address"

const _withdrawStakePayloadID = byte(3)

// WithdrawStake is the operation that settles the sender's matured stake position in a vault
// and returns the payout to the sender's account.
type WithdrawStake struct {
	AbstractAction

	vault string
}

// NewWithdrawStake creates a WithdrawStake action
func NewWithdrawStake(nonce uint64, sender address.Address, vault string) *WithdrawStake {
	return &WithdrawStake{
		AbstractAction: AbstractAction{
			version: CurrentVersion,
			nonce:   nonce,
			srcAddr: sender,
		},
		vault: vault,
	}
}

// Vault returns the vault address the stake position belongs to
func (ws *WithdrawStake) Vault() string { return ws.vault }

// ByteStream returns the canonical byte representation of the action
func (ws *WithdrawStake) ByteStream() []byte {
	stream := append([]byte{_withdrawStakePayloadID}, ws.basicByteStream()...)
	return append(stream, []byte(ws.vault)...)
}
