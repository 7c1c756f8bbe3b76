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
	"github.com/advproject/adv-core/pkg/util/byteutil"
	"github.com/advproject/adv-core/state"
	"github.com/advproject/adv-core/state/factory"
)

// _stakeSeed is the fixed tag mixed into every stake position address derivation
var _stakeSeed = []byte("stake")

const _stakePositionLen = 47

// StakePosition is the time-locked position of one user in one vault. The position lives
// at an address derived from the (vault, owner) pair, so a user can hold at most one
// position per vault. It is mutated exactly once, when the payout flips Withdrawn, and is
// kept afterwards as an audit record.
type StakePosition struct {
	Owner     address.Address
	Principal uint64
	TermYears uint8
	CreatedAt uint64
	MaturesAt uint64
	Withdrawn bool
	Nonce     uint8
}

// Serialize serializes the stake position into bytes
func (sp *StakePosition) Serialize() ([]byte, error) {
	data := make([]byte, 0, _stakePositionLen)
	data = append(data, sp.Owner.Bytes()...)
	data = append(data, byteutil.Uint64ToBytesBigEndian(sp.Principal)...)
	data = append(data, sp.TermYears)
	data = append(data, byteutil.Uint64ToBytesBigEndian(sp.CreatedAt)...)
	data = append(data, byteutil.Uint64ToBytesBigEndian(sp.MaturesAt)...)
	if sp.Withdrawn {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	return append(data, sp.Nonce), nil
}

// Deserialize deserializes bytes into a stake position
func (sp *StakePosition) Deserialize(data []byte) error {
	if len(data) != _stakePositionLen {
		return errors.Wrapf(state.ErrFailedToUnmarshalState, "invalid stake position length %d", len(data))
	}
	owner, err := address.FromBytes(data[:20])
	if err != nil {
		return errors.Wrap(state.ErrFailedToUnmarshalState, err.Error())
	}
	sp.Owner = owner
	sp.Principal = byteutil.BytesToUint64BigEndian(data[20:28])
	sp.TermYears = data[28]
	sp.CreatedAt = byteutil.BytesToUint64BigEndian(data[29:37])
	sp.MaturesAt = byteutil.BytesToUint64BigEndian(data[37:45])
	sp.Withdrawn = data[45] != 0
	sp.Nonce = data[46]
	return nil
}

// DeriveStakeAddress computes the deterministic address of the stake position of owner in
// the given vault
func DeriveStakeAddress(vault, owner address.Address) (address.Address, uint8, error) {
	seed := make([]byte, 0, len(_stakeSeed)+len(vault.Bytes())+len(owner.Bytes()))
	seed = append(seed, _stakeSeed...)
	seed = append(seed, vault.Bytes()...)
	seed = append(seed, owner.Bytes()...)
	sum := hash.Hash256b(seed)
	nonce := sum[len(sum)-1]
	h := hash.Hash160b(append(seed, nonce))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		return nil, 0, errors.Wrapf(
			err, "failed to derive the stake address of owner %s in vault %s", owner.String(), vault.String(),
		)
	}
	return addr, nonce, nil
}

func getStakePosition(sr protocol.StateReader, addr address.Address) (*StakePosition, error) {
	var position StakePosition
	if _, err := sr.State(
		&position,
		protocol.NamespaceOption(factory.VaultNamespace),
		protocol.KeyOption(addr.Bytes()),
	); err != nil {
		return nil, err
	}
	return &position, nil
}

func putStakePosition(sm protocol.StateManager, addr address.Address, position *StakePosition) error {
	_, err := sm.PutState(
		position,
		protocol.NamespaceOption(factory.VaultNamespace),
		protocol.KeyOption(addr.Bytes()),
	)
	return err
}
