// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/advproject/adv-core/pkg/util/byteutil"
)

const _accountSize = 16

// Account is the canonical representation of a token account. Balance arithmetic is checked:
// a debit past zero or a credit past the uint64 range fails explicitly instead of wrapping.
type Account struct {
	Nonce   uint64
	Balance uint64
}

// EmptyAccount returns an empty account with zero balance
func EmptyAccount() Account {
	return Account{}
}

// Serialize serializes the account state into bytes
func (st *Account) Serialize() ([]byte, error) {
	bytes := make([]byte, 0, _accountSize)
	bytes = append(bytes, byteutil.Uint64ToBytesBigEndian(st.Nonce)...)
	bytes = append(bytes, byteutil.Uint64ToBytesBigEndian(st.Balance)...)
	return bytes, nil
}

// Deserialize deserializes bytes into the account state
func (st *Account) Deserialize(data []byte) error {
	if len(data) != _accountSize {
		return errors.Wrapf(ErrFailedToUnmarshalState, "invalid account length %d", len(data))
	}
	st.Nonce = byteutil.BytesToUint64BigEndian(data[:8])
	st.Balance = byteutil.BytesToUint64BigEndian(data[8:])
	return nil
}

// AddBalance adds balance to the account
func (st *Account) AddBalance(amount uint64) error {
	sum, overflow := math.SafeAdd(st.Balance, amount)
	if overflow {
		return errors.Wrapf(ErrBalanceOverflow, "failed to credit %d to balance %d", amount, st.Balance)
	}
	st.Balance = sum
	return nil
}

// SubBalance subtracts balance from the account
func (st *Account) SubBalance(amount uint64) error {
	if amount > st.Balance {
		return errors.Wrapf(ErrNotEnoughBalance, "balance %d, required amount %d", st.Balance, amount)
	}
	st.Balance -= amount
	return nil
}

// HasSufficientBalance returns true if the account balance covers the amount
func (st *Account) HasSufficientBalance(amount uint64) bool {
	return amount <= st.Balance
}

// SetNonce updates the nonce if the new value is larger
func (st *Account) SetNonce(nonce uint64) {
	if nonce > st.Nonce {
		st.Nonce = nonce
	}
}

// Clone returns a copy of the account
func (st *Account) Clone() *Account {
	s := *st
	return &s
}
