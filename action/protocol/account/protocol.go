// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package account

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
const protocolID = "account"

// Protocol defines the protocol of handling plain token transfers
type Protocol struct {
	addr address.Address
}

// NewProtocol instantiates the protocol of the token ledger
func NewProtocol() *Protocol {
	h := hash.Hash160b([]byte(protocolID))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		log.L().Panic("Error when constructing the address of account protocol", zap.Error(err))
	}
	return &Protocol{addr: addr}
}

// Handle handles a token transfer
func (p *Protocol) Handle(ctx context.Context, act action.Action, sm protocol.StateManager) (*action.Receipt, error) {
	tsf, ok := act.(*action.Transfer)
	if !ok {
		return nil, nil
	}
	return p.handleTransfer(ctx, tsf, sm)
}

// Validate validates a token transfer
func (p *Protocol) Validate(ctx context.Context, act action.Action) error {
	tsf, ok := act.(*action.Transfer)
	if !ok {
		return nil
	}
	return p.validateTransfer(ctx, tsf)
}

// Register registers the protocol with a unique ID
func (p *Protocol) Register(r *protocol.Registry) error {
	return r.Register(protocolID, p)
}

// ForceRegister registers the protocol with a unique ID and force replacing the previous protocol if it exists
func (p *Protocol) ForceRegister(r *protocol.Registry) error {
	return r.ForceRegister(protocolID, p)
}
