// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/advproject/adv-core/state"
	"github.com/advproject/adv-core/test/identityset"
)

func TestDeriveVaultAddress(t *testing.T) {
	require := require.New(t)

	admin := identityset.Address(0)
	addr, nonce, err := DeriveVaultAddress(admin)
	require.NoError(err)
	require.NotNil(addr)

	// derivation is deterministic
	again, nonceAgain, err := DeriveVaultAddress(admin)
	require.NoError(err)
	require.Equal(addr.String(), again.String())
	require.Equal(nonce, nonceAgain)

	// different admins derive different addresses
	seen := make(map[string]bool)
	for i := 0; i < identityset.Size(); i++ {
		derived, _, err := DeriveVaultAddress(identityset.Address(i))
		require.NoError(err)
		require.False(seen[derived.String()])
		seen[derived.String()] = true
	}

	// the vault address never collides with the admin's own account
	require.NotEqual(admin.String(), addr.String())
}

func TestVaultSerialize(t *testing.T) {
	require := require.New(t)

	admin := identityset.Address(1)
	_, nonce, err := DeriveVaultAddress(admin)
	require.NoError(err)
	vault := &Vault{Admin: admin, Nonce: nonce}

	data, err := vault.Serialize()
	require.NoError(err)
	require.Len(data, _vaultRecordLen)

	var decoded Vault
	require.NoError(decoded.Deserialize(data))
	require.Equal(admin.String(), decoded.Admin.String())
	require.Equal(nonce, decoded.Nonce)

	err = decoded.Deserialize(data[:10])
	require.Equal(state.ErrFailedToUnmarshalState, errors.Cause(err))
}
