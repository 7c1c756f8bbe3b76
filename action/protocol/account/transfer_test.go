// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package account

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/config"
	"github.com/advproject/adv-core/db"
	"github.com/advproject/adv-core/state"
	"github.com/advproject/adv-core/state/factory"
	"github.com/advproject/adv-core/test/identityset"
)

func TestHandleTransfer(t *testing.T) {
	require := require.New(t)
	sender := identityset.Address(0)
	recipient := identityset.Address(1)

	cfg := config.Default
	cfg.Genesis.InitBalances = map[string]uint64{sender.String(): 1000}
	sf, err := factory.NewFactory(cfg, db.NewMemKVStore())
	require.NoError(err)
	require.NoError(sf.Start(context.Background()))

	p := NewProtocol()
	tsf := action.NewTransfer(1, sender, recipient.String(), 400)
	ws, err := sf.NewWorkingSet()
	require.NoError(err)
	ctx := protocol.WithBlockCtx(context.Background(), protocol.BlockCtx{
		BlockHeight:    1,
		BlockTimeStamp: time.Now(),
	})
	ctx = protocol.WithActionCtx(ctx, protocol.ActionCtx{
		Caller:     sender,
		ActionHash: action.Hash(tsf),
		Nonce:      tsf.Nonce(),
	})

	receipt, err := p.Handle(ctx, tsf, ws)
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)
	require.NoError(ws.Commit())

	senderAcct, err := accountutil.LoadAccount(sf, sender)
	require.NoError(err)
	require.Equal(uint64(600), senderAcct.Balance)
	require.Equal(uint64(1), senderAcct.Nonce)
	recipientAcct, err := accountutil.LoadAccount(sf, recipient)
	require.NoError(err)
	require.Equal(uint64(400), recipientAcct.Balance)

	tLogs := receipt.TransactionLogs()
	require.Len(tLogs, 1)
	require.Equal(action.TransactionLogTypeNativeTransfer, tLogs[0].Type)
	require.Equal(uint64(400), tLogs[0].Amount)

	// overdraft leaves both accounts unchanged
	ws, err = sf.NewWorkingSet()
	require.NoError(err)
	_, err = p.Handle(ctx, action.NewTransfer(2, sender, recipient.String(), 601), ws)
	require.Equal(state.ErrNotEnoughBalance, errors.Cause(err))
}

func TestValidateTransfer(t *testing.T) {
	require := require.New(t)
	p := NewProtocol()
	ctx := context.Background()
	sender := identityset.Address(0)
	recipient := identityset.Address(1)

	require.NoError(p.Validate(ctx, action.NewTransfer(1, sender, recipient.String(), 1)))

	err := p.Validate(ctx, action.NewTransfer(1, sender, recipient.String(), 0))
	require.Equal(ErrInvalidAmount, errors.Cause(err))

	err = p.Validate(ctx, action.NewTransfer(1, sender, "not-an-address", 1))
	require.Equal(action.ErrAddress, errors.Cause(err))
}
