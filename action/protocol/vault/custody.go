// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	accountutil "github.com/advproject/adv-core/action/protocol/account/util"
	"github.com/advproject/adv-core/state"
)

// authority proves the right to debit an account. A transfer out of a user account is
// authorized by the owner's signature; a transfer out of vault custody is authorized by
// the vault's derivation proof, never a private key.
type authority interface {
	verify(from address.Address) error
}

// ownerAuthority is the signature of the debited account's owner
type ownerAuthority struct {
	signer address.Address
}

func (a ownerAuthority) verify(from address.Address) error {
	if !address.Equal(a.signer, from) {
		return errors.Wrapf(
			ErrInvalidAuthority, "signer %s does not own the debited account %s", a.signer.String(), from.String(),
		)
	}
	return nil
}

// vaultAuthority is the derivation proof of a vault over its own custody account
type vaultAuthority struct {
	admin address.Address
	nonce uint8
}

func (a vaultAuthority) verify(from address.Address) error {
	derived, nonce, err := DeriveVaultAddress(a.admin)
	if err != nil {
		return err
	}
	if !address.Equal(derived, from) || nonce != a.nonce {
		return errors.Wrapf(
			ErrInvalidAuthority, "derivation proof of admin %s does not cover the debited account %s",
			a.admin.String(), from.String(),
		)
	}
	return nil
}

// moveTokens atomically debits from and credits to after checking the presented
// authority. The staged writes take effect only when the enclosing working set commits.
func moveTokens(
	sm protocol.StateManager,
	from, to address.Address,
	amount uint64,
	auth authority,
	logType string,
) (*action.TransactionLog, error) {
	if err := auth.verify(from); err != nil {
		return nil, err
	}
	sender, err := accountutil.LoadOrCreateAccount(sm, from)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load the account to debit %s", from.String())
	}
	if !sender.HasSufficientBalance(amount) {
		return nil, errors.Wrapf(
			state.ErrNotEnoughBalance, "account %s balance %d, required amount %d", from.String(), sender.Balance, amount,
		)
	}
	if err := sender.SubBalance(amount); err != nil {
		return nil, errors.Wrapf(err, "failed to debit account %s", from.String())
	}
	if err := accountutil.StoreAccount(sm, from, sender); err != nil {
		return nil, errors.Wrap(err, "failed to update pending account changes")
	}
	recipient, err := accountutil.LoadOrCreateAccount(sm, to)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load the account to credit %s", to.String())
	}
	if err := recipient.AddBalance(amount); err != nil {
		return nil, errors.Wrapf(err, "failed to credit account %s", to.String())
	}
	if err := accountutil.StoreAccount(sm, to, recipient); err != nil {
		return nil, errors.Wrap(err, "failed to update pending account changes")
	}
	return &action.TransactionLog{
		Type:      logType,
		Sender:    from.String(),
		Recipient: to.String(),
		Amount:    amount,
	}, nil
}
