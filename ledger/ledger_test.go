// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/action/protocol/account"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/action/protocol/vault"
	"github.com/advproject/adv-core/config"
	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/state/factory"
	"github.com/advproject/adv-core/test/identityset"
)

func newTestLedger(t *testing.T, balances map[string]uint64, clk clock.Clock) (*Ledger, factory.Factory) {
	require := require.New(t)

	cfg := config.Default
	cfg.Genesis.InitBalances = balances
	sf, err := factory.NewFactory(cfg, db.NewMemKVStore())
	require.NoError(err)

	registry := protocol.NewRegistry()
	require.NoError(account.NewProtocol().Register(registry))
	require.NoError(vault.NewProtocol().Register(registry))

	l := New(sf, registry, ClockOption(clk))
	require.NoError(l.Start(context.Background()))
	return l, sf
}

func TestLedgerStakeLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	admin := identityset.Address(0)
	user := identityset.Address(1)
	vaultAddr, _, err := vault.DeriveVaultAddress(admin)
	require.NoError(err)

	clk := clock.NewMock()
	l, sf := newTestLedger(t, map[string]uint64{
		user.String():      5000,
		vaultAddr.String(): 1000,
	}, clk)
	defer func() {
		require.NoError(l.Stop(ctx))
	}()

	receipt, err := l.Execute(ctx, action.NewCreateVault(1, admin))
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)
	require.Equal(uint64(1), receipt.BlockHeight)
	require.Equal(vaultAddr.String(), receipt.ContractAddress)

	receipt, err = l.Execute(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 1000, 2))
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)
	require.Equal(uint64(2), receipt.BlockHeight)

	// the stake stays locked for the whole two-year term
	_, err = l.Execute(ctx, action.NewWithdrawStake(2, user, vaultAddr.String()))
	require.Equal(vault.ErrStillLocked, errors.Cause(err))
	height, err := sf.Height()
	require.NoError(err)
	require.Equal(uint64(2), height)

	clk.Add(2 * 365 * 24 * time.Hour)
	receipt, err = l.Execute(ctx, action.NewWithdrawStake(2, user, vaultAddr.String()))
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)

	userAcct, err := accountutil.LoadAccount(sf, user)
	require.NoError(err)
	require.Equal(uint64(6000), userAcct.Balance)
	vaultAcct, err := accountutil.LoadAccount(sf, vaultAddr)
	require.NoError(err)
	require.Zero(vaultAcct.Balance)

	// a failed operation does not advance the ledger
	_, err = l.Execute(ctx, action.NewWithdrawStake(3, user, vaultAddr.String()))
	require.Equal(vault.ErrAlreadyWithdrawn, errors.Cause(err))
	height, err = sf.Height()
	require.NoError(err)
	require.Equal(uint64(3), height)
}

func TestLedgerTransfer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sender := identityset.Address(0)
	recipient := identityset.Address(1)

	l, sf := newTestLedger(t, map[string]uint64{sender.String(): 100}, clock.NewMock())

	receipt, err := l.Execute(ctx, action.NewTransfer(1, sender, recipient.String(), 60))
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)

	recipientAcct, err := accountutil.LoadAccount(sf, recipient)
	require.NoError(err)
	require.Equal(uint64(60), recipientAcct.Balance)
}

func TestLedgerValidation(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	user := identityset.Address(0)
	vaultAddr, _, err := vault.DeriveVaultAddress(identityset.Address(1))
	require.NoError(err)

	l, sf := newTestLedger(t, map[string]uint64{user.String(): 100}, clock.NewMock())

	// validation rejects the action before any state is touched
	_, err = l.Execute(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 0, 1))
	require.Equal(vault.ErrInvalidAmount, errors.Cause(err))
	_, err = l.Execute(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 10, 3))
	require.Equal(vault.ErrInvalidStakePeriod, errors.Cause(err))
	_, err = l.Execute(ctx, nil)
	require.Equal(action.ErrNilAction, errors.Cause(err))

	height, err := sf.Height()
	require.NoError(err)
	require.Zero(height)
}
