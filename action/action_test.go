// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import (
	"testing"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/stretchr/testify/require"

	"github.com/advproject/adv-core/test/identityset"
)

func TestActionHash(t *testing.T) {
	require := require.New(t)
	sender := identityset.Address(0)
	vault := identityset.Address(1).String()

	acts := []Action{
		NewCreateVault(1, sender),
		NewCreateStake(1, sender, vault, 100, 1),
		NewWithdrawStake(1, sender, vault),
		NewTransfer(1, sender, vault, 100),
	}
	// every action kind hashes distinctly even with identical fields
	seen := make(map[hash.Hash256]bool)
	for _, act := range acts {
		h := Hash(act)
		require.False(seen[h])
		seen[h] = true
	}

	// the hash covers the nonce
	require.NotEqual(Hash(NewCreateVault(1, sender)), Hash(NewCreateVault(2, sender)))
	// and is stable
	require.Equal(Hash(acts[1]), Hash(NewCreateStake(1, sender, vault, 100, 1)))
}

func TestAbstractAction(t *testing.T) {
	require := require.New(t)
	sender := identityset.Address(2)

	act := NewCreateStake(7, sender, identityset.Address(3).String(), 500, 2)
	require.Equal(CurrentVersion, act.Version())
	require.Equal(uint64(7), act.Nonce())
	require.Equal(sender.String(), act.SenderAddress().String())
	require.Equal(uint64(500), act.Amount())
	require.Equal(uint8(2), act.TermYears())
}
