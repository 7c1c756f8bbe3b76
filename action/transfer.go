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

const _transferPayloadID = byte(4)

// Transfer is a plain token transfer between two accounts, outside of any vault custody.
type Transfer struct {
	AbstractAction

	amount    uint64
	recipient string
}

// NewTransfer creates a Transfer action
func NewTransfer(nonce uint64, sender address.Address, recipient string, amount uint64) *Transfer {
	return &Transfer{
		AbstractAction: AbstractAction{
			version: CurrentVersion,
			nonce:   nonce,
			srcAddr: sender,
		},
		amount:    amount,
		recipient: recipient,
	}
}

// Amount returns the amount of tokens to transfer
func (tsf *Transfer) Amount() uint64 { return tsf.amount }

// Recipient returns the recipient address of the transfer
func (tsf *Transfer) Recipient() string { return tsf.recipient }

// ByteStream returns the canonical byte representation of the action
func (tsf *Transfer) ByteStream() []byte {
	stream := append([]byte{_transferPayloadID}, tsf.basicByteStream()...)
	stream = append(stream, byteutil.Uint64ToBytes(tsf.amount)...)
	return append(stream, []byte(tsf.recipient)...)
}
