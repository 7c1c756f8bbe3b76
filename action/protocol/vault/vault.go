// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/state"
	"github.com/advproject/adv-core/state/factory"
)

// _vaultSeed is the fixed tag mixed into every vault address derivation
var _vaultSeed = []byte("vault")

const _vaultRecordLen = 21

// Vault is the custody record of one administrator. Its address is a one-way function of
// the admin identity and the fixed vault tag, so no two admins can collide and the same
// admin always derives the same address.
type Vault struct {
	Admin address.Address
	Nonce uint8
}

// Serialize serializes the vault record into bytes
func (v *Vault) Serialize() ([]byte, error) {
	data := make([]byte, 0, _vaultRecordLen)
	data = append(data, v.Admin.Bytes()...)
	return append(data, v.Nonce), nil
}

// Deserialize deserializes bytes into a vault record
func (v *Vault) Deserialize(data []byte) error {
	if len(data) != _vaultRecordLen {
		return errors.Wrapf(state.ErrFailedToUnmarshalState, "invalid vault record length %d", len(data))
	}
	admin, err := address.FromBytes(data[:20])
	if err != nil {
		return errors.Wrap(state.ErrFailedToUnmarshalState, err.Error())
	}
	v.Admin = admin
	v.Nonce = data[20]
	return nil
}

// DeriveVaultAddress computes the deterministic vault address of an admin, together with
// the derivation nonce the vault later presents as its transfer authority
func DeriveVaultAddress(admin address.Address) (address.Address, uint8, error) {
	seed := make([]byte, 0, len(_vaultSeed)+len(admin.Bytes()))
	seed = append(seed, _vaultSeed...)
	seed = append(seed, admin.Bytes()...)
	sum := hash.Hash256b(seed)
	nonce := sum[len(sum)-1]
	h := hash.Hash160b(append(seed, nonce))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to derive the vault address of admin %s", admin.String())
	}
	return addr, nonce, nil
}

func getVault(sr protocol.StateReader, addr address.Address) (*Vault, error) {
	var vault Vault
	if _, err := sr.State(
		&vault,
		protocol.NamespaceOption(factory.VaultNamespace),
		protocol.KeyOption(addr.Bytes()),
	); err != nil {
		return nil, err
	}
	return &vault, nil
}

func putVault(sm protocol.StateManager, addr address.Address, vault *Vault) error {
	_, err := sm.PutState(
		vault,
		protocol.NamespaceOption(factory.VaultNamespace),
		protocol.KeyOption(addr.Bytes()),
	)
	return err
}
