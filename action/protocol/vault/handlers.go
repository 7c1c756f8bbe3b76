// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/pkg/util/byteutil"
	"github.com/advproject/adv-core/state"
)

func (p *Protocol) handleCreateVault(ctx context.Context, act *action.CreateVault, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	blkCtx := protocol.MustGetBlockCtx(ctx)

	vaultAddr, nonce, err := DeriveVaultAddress(actionCtx.Caller)
	if err != nil {
		return nil, err
	}
	_, err = getVault(sm, vaultAddr)
	switch errors.Cause(err) {
	case nil:
		return nil, errors.Wrapf(
			ErrAlreadyExists, "vault of admin %s at address %s", actionCtx.Caller.String(), vaultAddr.String(),
		)
	case state.ErrStateNotExist:
	default:
		return nil, errors.Wrapf(err, "failed to check the vault address %s", vaultAddr.String())
	}
	if err := putVault(sm, vaultAddr, &Vault{Admin: actionCtx.Caller, Nonce: nonce}); err != nil {
		return nil, errors.Wrapf(err, "failed to store the vault at address %s", vaultAddr.String())
	}
	if err := p.bumpCallerNonce(sm, actionCtx); err != nil {
		return nil, err
	}

	log := newReceiptLog(p.addr.String(), HandleCreateVault)
	log.AddAddress(vaultAddr)
	log.AddAddress(actionCtx.Caller)
	log.SetData([]byte{nonce})

	receipt := &action.Receipt{
		Status:          action.SuccessReceiptStatus,
		BlockHeight:     blkCtx.BlockHeight,
		ActionHash:      actionCtx.ActionHash,
		ContractAddress: vaultAddr.String(),
	}
	receipt.AddLogs(log.Build(ctx))
	return receipt, nil
}

func (p *Protocol) handleCreateStake(ctx context.Context, act *action.CreateStake, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	blkCtx := protocol.MustGetBlockCtx(ctx)

	vaultAddr, err := address.FromString(act.Vault())
	if err != nil {
		return nil, errors.Wrapf(action.ErrAddress, "failed to decode vault address %s", act.Vault())
	}
	if _, err := assertVault(sm, vaultAddr); err != nil {
		return nil, err
	}
	stakeAddr, stakeNonce, err := DeriveStakeAddress(vaultAddr, actionCtx.Caller)
	if err != nil {
		return nil, err
	}
	_, err = getStakePosition(sm, stakeAddr)
	switch errors.Cause(err) {
	case nil:
		return nil, errors.Wrapf(
			ErrAlreadyExists, "stake position of %s in vault %s", actionCtx.Caller.String(), vaultAddr.String(),
		)
	case state.ErrStateNotExist:
	default:
		return nil, errors.Wrapf(err, "failed to check the stake address %s", stakeAddr.String())
	}

	createdAt := uint64(blkCtx.BlockTimeStamp.Unix())
	maturesAt, err := maturityTime(createdAt, act.TermYears())
	if err != nil {
		return nil, err
	}
	if err := p.bumpCallerNonce(sm, actionCtx); err != nil {
		return nil, err
	}
	depositLog, err := moveTokens(
		sm, actionCtx.Caller, vaultAddr, act.Amount(),
		ownerAuthority{signer: actionCtx.Caller},
		action.TransactionLogTypeDepositToStake,
	)
	if err != nil {
		return nil, err
	}
	position := &StakePosition{
		Owner:     actionCtx.Caller,
		Principal: act.Amount(),
		TermYears: act.TermYears(),
		CreatedAt: createdAt,
		MaturesAt: maturesAt,
		Withdrawn: false,
		Nonce:     stakeNonce,
	}
	if err := putStakePosition(sm, stakeAddr, position); err != nil {
		return nil, errors.Wrapf(err, "failed to store the stake position at address %s", stakeAddr.String())
	}

	log := newReceiptLog(p.addr.String(), HandleCreateStake)
	log.AddAddress(vaultAddr)
	log.AddAddress(actionCtx.Caller)
	data := byteutil.Uint64ToBytesBigEndian(act.Amount())
	data = append(data, act.TermYears())
	data = append(data, byteutil.Uint64ToBytesBigEndian(maturesAt)...)
	log.SetData(data)

	receipt := &action.Receipt{
		Status:          action.SuccessReceiptStatus,
		BlockHeight:     blkCtx.BlockHeight,
		ActionHash:      actionCtx.ActionHash,
		ContractAddress: stakeAddr.String(),
	}
	receipt.AddLogs(log.Build(ctx))
	receipt.AddTransactionLogs(depositLog)
	return receipt, nil
}

func (p *Protocol) handleWithdrawStake(ctx context.Context, act *action.WithdrawStake, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	blkCtx := protocol.MustGetBlockCtx(ctx)

	vaultAddr, err := address.FromString(act.Vault())
	if err != nil {
		return nil, errors.Wrapf(action.ErrAddress, "failed to decode vault address %s", act.Vault())
	}
	vault, err := assertVault(sm, vaultAddr)
	if err != nil {
		return nil, err
	}
	position, stakeAddr, err := assertStakeOwner(sm, vaultAddr, actionCtx.Caller)
	if err != nil {
		return nil, err
	}
	if position.Withdrawn {
		return nil, errors.Wrapf(
			ErrAlreadyWithdrawn, "stake position of %s in vault %s", actionCtx.Caller.String(), vaultAddr.String(),
		)
	}
	if now := uint64(blkCtx.BlockTimeStamp.Unix()); now < position.MaturesAt {
		return nil, errors.Wrapf(
			ErrStillLocked, "stake position matures at %d, current time %d", position.MaturesAt, now,
		)
	}
	payout, err := totalPayout(position.Principal, position.TermYears)
	if err != nil {
		return nil, err
	}
	if err := p.bumpCallerNonce(sm, actionCtx); err != nil {
		return nil, err
	}
	payoutLog, err := moveTokens(
		sm, vaultAddr, actionCtx.Caller, payout,
		vaultAuthority{admin: vault.Admin, nonce: vault.Nonce},
		action.TransactionLogTypeWithdrawStake,
	)
	if err != nil {
		return nil, err
	}
	position.Withdrawn = true
	if err := putStakePosition(sm, stakeAddr, position); err != nil {
		return nil, errors.Wrapf(err, "failed to store the stake position at address %s", stakeAddr.String())
	}

	log := newReceiptLog(p.addr.String(), HandleWithdrawStake)
	log.AddAddress(vaultAddr)
	log.AddAddress(actionCtx.Caller)
	data := byteutil.Uint64ToBytesBigEndian(position.Principal)
	data = append(data, byteutil.Uint64ToBytesBigEndian(payout)...)
	data = append(data, uint8(stakeMultiplier(position.TermYears)))
	log.SetData(data)

	receipt := &action.Receipt{
		Status:          action.SuccessReceiptStatus,
		BlockHeight:     blkCtx.BlockHeight,
		ActionHash:      actionCtx.ActionHash,
		ContractAddress: stakeAddr.String(),
	}
	receipt.AddLogs(log.Build(ctx))
	receipt.AddTransactionLogs(payoutLog)
	return receipt, nil
}

// bumpCallerNonce records the caller's operation nonce on its account
func (p *Protocol) bumpCallerNonce(sm protocol.StateManager, actionCtx protocol.ActionCtx) error {
	caller, err := accountutil.LoadOrCreateAccount(sm, actionCtx.Caller)
	if err != nil {
		return errors.Wrapf(err, "failed to load or create the account of caller %s", actionCtx.Caller.String())
	}
	caller.SetNonce(actionCtx.Nonce)
	if err := accountutil.StoreAccount(sm, actionCtx.Caller, caller); err != nil {
		return errors.Wrap(err, "failed to update pending account changes")
	}
	return nil
}
