// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/state"
)

// assertVault loads the vault record at addr and proves the address is the derivation of
// the recorded admin. A record whose address cannot be re-derived from its own content is
// treated as forged.
func assertVault(sr protocol.StateReader, addr address.Address) (*Vault, error) {
	vault, err := getVault(sr, addr)
	switch errors.Cause(err) {
	case nil:
	case state.ErrStateNotExist:
		return nil, errors.Wrapf(ErrDerivedAddress, "no vault at address %s", addr.String())
	default:
		return nil, errors.Wrapf(err, "failed to load the vault at address %s", addr.String())
	}
	derived, nonce, err := DeriveVaultAddress(vault.Admin)
	if err != nil {
		return nil, err
	}
	if !address.Equal(derived, addr) || nonce != vault.Nonce {
		return nil, errors.Wrapf(
			ErrDerivedAddress, "vault at %s is not the derivation of admin %s", addr.String(), vault.Admin.String(),
		)
	}
	return vault, nil
}

// assertStakeOwner loads the stake position of owner in the given vault and checks the
// recorded owner matches. A missing position and a foreign position fail the same way, so
// a caller cannot tell which vaults other users have staked in.
func assertStakeOwner(sr protocol.StateReader, vaultAddr, owner address.Address) (*StakePosition, address.Address, error) {
	stakeAddr, _, err := DeriveStakeAddress(vaultAddr, owner)
	if err != nil {
		return nil, nil, err
	}
	position, err := getStakePosition(sr, stakeAddr)
	switch errors.Cause(err) {
	case nil:
	case state.ErrStateNotExist:
		return nil, nil, errors.Wrapf(ErrUnauthorizedUser, "no stake position of %s in vault %s", owner.String(), vaultAddr.String())
	default:
		return nil, nil, errors.Wrapf(err, "failed to load the stake position at address %s", stakeAddr.String())
	}
	if !address.Equal(position.Owner, owner) {
		return nil, nil, errors.Wrapf(
			ErrUnauthorizedUser, "stake position at %s is not owned by %s", stakeAddr.String(), owner.String(),
		)
	}
	return position, stakeAddr, nil
}
