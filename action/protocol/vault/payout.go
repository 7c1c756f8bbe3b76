// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
)

// _secondsPerYear is a 365-day year in seconds
const _secondsPerYear = uint64(31536000)

// stakeMultiplier maps a lock term to its payout multiplier. Terms outside the two
// supported tiers cannot be stored by stakeTokens; if one is ever observed it pays out
// the bare principal.
func stakeMultiplier(termYears uint8) uint64 {
	switch termYears {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 1
	}
}

// maturityTime computes the unlock timestamp of a stake created at createdAt. The result
// must stay within the signed 64-bit timestamp range.
func maturityTime(createdAt uint64, termYears uint8) (uint64, error) {
	lock, overflow := math.SafeMul(uint64(termYears), _secondsPerYear)
	if overflow {
		return 0, errors.Wrapf(ErrMathOverflow, "lock period of %d years", termYears)
	}
	maturesAt, overflow := math.SafeAdd(createdAt, lock)
	if overflow || maturesAt > uint64(math.MaxInt64) {
		return 0, errors.Wrapf(ErrMathOverflow, "maturity of a stake created at %d", createdAt)
	}
	return maturesAt, nil
}

// totalPayout computes the amount returned on withdrawal, the principal times the term's
// multiplier
func totalPayout(principal uint64, termYears uint8) (uint64, error) {
	payout, overflow := math.SafeMul(principal, stakeMultiplier(termYears))
	if overflow {
		return 0, errors.Wrapf(ErrMathOverflow, "payout of principal %d over %d years", principal, termYears)
	}
	return payout, nil
}
