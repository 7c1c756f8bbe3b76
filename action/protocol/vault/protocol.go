// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package vault implements the custody-and-staking protocol. A vault is a custody record
// owned by one administrator; users lock tokens into it as stake positions that mature into
// a payout. Vaults, stake positions, and their custody accounts all live at addresses
// deterministically derived from their owners, which doubles as the protocol's
// one-record-per-owner exclusivity guarantee.
package vault

import (
	"context"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"go.uber.org/zap"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/pkg/log"
)

// protocolID is the protocol ID
const protocolID = "vault"

// Protocol defines the protocol of handling vault staking
type Protocol struct {
	addr address.Address
}

// NewProtocol instantiates the protocol of vault staking
func NewProtocol() *Protocol {
	h := hash.Hash160b([]byte(protocolID))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		log.L().Panic("Error when constructing the address of vault protocol", zap.Error(err))
	}
	return &Protocol{addr: addr}
}

// Handle handles a vault staking message
func (p *Protocol) Handle(ctx context.Context, act action.Action, sm protocol.StateManager) (*action.Receipt, error) {
	switch act := act.(type) {
	case *action.CreateVault:
		return p.handleCreateVault(ctx, act, sm)
	case *action.CreateStake:
		return p.handleCreateStake(ctx, act, sm)
	case *action.WithdrawStake:
		return p.handleWithdrawStake(ctx, act, sm)
	}
	return nil, nil
}

// Validate validates a vault staking message
func (p *Protocol) Validate(ctx context.Context, act action.Action) error {
	switch act := act.(type) {
	case *action.CreateVault:
		return p.validateCreateVault(ctx, act)
	case *action.CreateStake:
		return p.validateCreateStake(ctx, act)
	case *action.WithdrawStake:
		return p.validateWithdrawStake(ctx, act)
	}
	return nil
}

// Register registers the protocol with a unique ID
func (p *Protocol) Register(r *protocol.Registry) error {
	return r.Register(protocolID, p)
}

// ForceRegister registers the protocol with a unique ID and force replacing the previous protocol if it exists
func (p *Protocol) ForceRegister(r *protocol.Registry) error {
	return r.ForceRegister(protocolID, p)
}
