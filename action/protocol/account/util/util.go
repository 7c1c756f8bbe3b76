// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package accountutil

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/state"
)

// LoadOrCreateAccount loads the account at the given address, or returns a fresh empty
// account if none exists yet
func LoadOrCreateAccount(sm protocol.StateManager, addr address.Address) (*state.Account, error) {
	account := state.EmptyAccount()
	_, err := sm.State(&account, protocol.KeyOption(addr.Bytes()))
	switch errors.Cause(err) {
	case nil, state.ErrStateNotExist:
		return &account, nil
	}
	return nil, err
}

// LoadAccount loads the account at the given address
func LoadAccount(sr protocol.StateReader, addr address.Address) (*state.Account, error) {
	account := state.EmptyAccount()
	if _, err := sr.State(&account, protocol.KeyOption(addr.Bytes())); err != nil {
		return nil, err
	}
	return &account, nil
}

// StoreAccount puts the updated account state into the state manager
func StoreAccount(sm protocol.StateManager, addr address.Address, account *state.Account) error {
	_, err := sm.PutState(account, protocol.KeyOption(addr.Bytes()))
	return err
}
