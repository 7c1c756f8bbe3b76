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
)

var (
	// ErrInvalidAmount indicates the stake amount is zero
	ErrInvalidAmount = errors.New("invalid stake amount")
	// ErrInvalidStakePeriod indicates the term is not one of the supported tiers
	ErrInvalidStakePeriod = errors.New("invalid stake period")
	// ErrAlreadyExists indicates a record already exists at the derived address
	ErrAlreadyExists = errors.New("record already exists at the derived address")
	// ErrUnauthorizedUser indicates the caller does not own the referenced record
	ErrUnauthorizedUser = errors.New("unauthorized user")
	// ErrStillLocked indicates the stake position has not matured yet
	ErrStillLocked = errors.New("stake is still locked")
	// ErrAlreadyWithdrawn indicates the stake position has been paid out before
	ErrAlreadyWithdrawn = errors.New("stake has already been withdrawn")
	// ErrMathOverflow indicates a checked arithmetic operation overflowed
	ErrMathOverflow = errors.New("math overflow")
	// ErrInvalidAuthority indicates the presented transfer authority does not match the debited account
	ErrInvalidAuthority = errors.New("invalid transfer authority")
	// ErrDerivedAddress indicates a record's address does not match its recorded derivation
	ErrDerivedAddress = errors.New("address does not match its derivation")
)

func (p *Protocol) validateCreateVault(_ context.Context, act *action.CreateVault) error {
	if act == nil {
		return action.ErrNilAction
	}
	return nil
}

func (p *Protocol) validateCreateStake(_ context.Context, act *action.CreateStake) error {
	if act == nil {
		return action.ErrNilAction
	}
	if act.Amount() == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero value")
	}
	if t := act.TermYears(); t != 1 && t != 2 {
		return errors.Wrapf(ErrInvalidStakePeriod, "term of %d years", t)
	}
	if _, err := address.FromString(act.Vault()); err != nil {
		return errors.Wrapf(action.ErrAddress, "failed to decode vault address %s", act.Vault())
	}
	return nil
}

func (p *Protocol) validateWithdrawStake(_ context.Context, act *action.WithdrawStake) error {
	if act == nil {
		return action.ErrNilAction
	}
	if _, err := address.FromString(act.Vault()); err != nil {
		return errors.Wrapf(action.ErrAddress, "failed to decode vault address %s", act.Vault())
	}
	return nil
}
