// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/test/identityset"
)

func TestValidateCreateStake(t *testing.T) {
	require := require.New(t)
	p := NewProtocol()
	ctx := context.Background()
	user := identityset.Address(0)
	vaultAddr, _, err := DeriveVaultAddress(identityset.Address(1))
	require.NoError(err)

	require.NoError(p.validateCreateStake(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 100, 1)))
	require.NoError(p.validateCreateStake(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 100, 2)))

	err = p.validateCreateStake(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 0, 1))
	require.Equal(ErrInvalidAmount, errors.Cause(err))

	for _, term := range []uint8{0, 3, 10, 255} {
		err = p.validateCreateStake(ctx, action.NewCreateStake(1, user, vaultAddr.String(), 100, term))
		require.Equal(ErrInvalidStakePeriod, errors.Cause(err))
	}

	err = p.validateCreateStake(ctx, action.NewCreateStake(1, user, "not-an-address", 100, 1))
	require.Equal(action.ErrAddress, errors.Cause(err))

	require.Equal(action.ErrNilAction, errors.Cause(p.validateCreateStake(ctx, nil)))
}

func TestValidateWithdrawStake(t *testing.T) {
	require := require.New(t)
	p := NewProtocol()
	ctx := context.Background()
	user := identityset.Address(0)
	vaultAddr, _, err := DeriveVaultAddress(identityset.Address(1))
	require.NoError(err)

	require.NoError(p.validateWithdrawStake(ctx, action.NewWithdrawStake(1, user, vaultAddr.String())))

	err = p.validateWithdrawStake(ctx, action.NewWithdrawStake(1, user, "not-an-address"))
	require.Equal(action.ErrAddress, errors.Cause(err))

	require.Equal(action.ErrNilAction, errors.Cause(p.validateWithdrawStake(ctx, nil)))
}

func TestValidateCreateVault(t *testing.T) {
	require := require.New(t)
	p := NewProtocol()
	ctx := context.Background()

	require.NoError(p.validateCreateVault(ctx, action.NewCreateVault(1, identityset.Address(0))))
	require.Equal(action.ErrNilAction, errors.Cause(p.validateCreateVault(ctx, nil)))
}
