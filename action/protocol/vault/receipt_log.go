// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"context"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
)

const (
	// HandleCreateVault is the handler name of createVault
	HandleCreateVault = "createVault"
	// HandleCreateStake is the handler name of stakeTokens
	HandleCreateStake = "stakeTokens"
	// HandleWithdrawStake is the handler name of withdrawStake
	HandleWithdrawStake = "withdrawStake"
)

// receiptLog accumulates the event log of one handler invocation. The first topic names
// the handler, the following topics index the identities the event refers to.
type receiptLog struct {
	addr   string
	topics action.Topics
	data   []byte
}

func newReceiptLog(addr, name string) *receiptLog {
	return &receiptLog{
		addr:   addr,
		topics: action.Topics{hash.BytesToHash256([]byte(name))},
	}
}

func (r *receiptLog) AddAddress(addr address.Address) {
	r.topics = append(r.topics, hash.BytesToHash256(addr.Bytes()))
}

func (r *receiptLog) SetData(data []byte) {
	r.data = data
}

func (r *receiptLog) Build(ctx context.Context) *action.Log {
	actionCtx := protocol.MustGetActionCtx(ctx)
	blkCtx := protocol.MustGetBlockCtx(ctx)
	return &action.Log{
		Address:     r.addr,
		Topics:      r.topics,
		Data:        r.data,
		BlockHeight: blkCtx.BlockHeight,
		ActionHash:  actionCtx.ActionHash,
	}
}
