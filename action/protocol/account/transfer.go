// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package account

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/state"
)

var (
	// ErrInvalidAmount indicates the transfer amount is zero
	ErrInvalidAmount = errors.New("invalid transfer amount")
)

// handleTransfer handles a transfer
func (p *Protocol) handleTransfer(ctx context.Context, tsf *action.Transfer, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	blkCtx := protocol.MustGetBlockCtx(ctx)

	sender, err := accountutil.LoadOrCreateAccount(sm, actionCtx.Caller)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load or create the account of sender %s", actionCtx.Caller.String())
	}
	if !sender.HasSufficientBalance(tsf.Amount()) {
		return nil, errors.Wrapf(
			state.ErrNotEnoughBalance,
			"sender %s balance %d, required amount %d",
			actionCtx.Caller.String(), sender.Balance, tsf.Amount(),
		)
	}

	recipientAddr, err := address.FromString(tsf.Recipient())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode recipient address %s", tsf.Recipient())
	}

	// update sender balance and nonce
	if err := sender.SubBalance(tsf.Amount()); err != nil {
		return nil, errors.Wrapf(err, "failed to update the balance of sender %s", actionCtx.Caller.String())
	}
	sender.SetNonce(actionCtx.Nonce)
	if err := accountutil.StoreAccount(sm, actionCtx.Caller, sender); err != nil {
		return nil, errors.Wrap(err, "failed to update pending account changes")
	}

	// update recipient balance
	recipient, err := accountutil.LoadOrCreateAccount(sm, recipientAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load or create the account of recipient %s", tsf.Recipient())
	}
	if err := recipient.AddBalance(tsf.Amount()); err != nil {
		return nil, errors.Wrapf(err, "failed to add balance %d", tsf.Amount())
	}
	if err := accountutil.StoreAccount(sm, recipientAddr, recipient); err != nil {
		return nil, errors.Wrap(err, "failed to update pending account changes")
	}

	receipt := &action.Receipt{
		Status:          action.SuccessReceiptStatus,
		BlockHeight:     blkCtx.BlockHeight,
		ActionHash:      actionCtx.ActionHash,
		ContractAddress: p.addr.String(),
	}
	receipt.AddTransactionLogs(&action.TransactionLog{
		Type:      action.TransactionLogTypeNativeTransfer,
		Sender:    actionCtx.Caller.String(),
		Recipient: tsf.Recipient(),
		Amount:    tsf.Amount(),
	})
	return receipt, nil
}

// validateTransfer validates a transfer
func (p *Protocol) validateTransfer(_ context.Context, tsf *action.Transfer) error {
	if tsf == nil {
		return action.ErrNilAction
	}
	if tsf.Amount() == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero value")
	}
	if _, err := address.FromString(tsf.Recipient()); err != nil {
		return errors.Wrapf(action.ErrAddress, "failed to decode recipient address %s", tsf.Recipient())
	}
	return nil
}
