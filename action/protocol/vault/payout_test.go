// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package vault

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStakeMultiplier(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(1), stakeMultiplier(1))
	require.Equal(uint64(2), stakeMultiplier(2))
	// terms outside the two tiers pay out the bare principal
	require.Equal(uint64(1), stakeMultiplier(0))
	require.Equal(uint64(1), stakeMultiplier(3))
	require.Equal(uint64(1), stakeMultiplier(255))
}

func TestMaturityTime(t *testing.T) {
	require := require.New(t)

	createdAt := uint64(1700000000)
	maturesAt, err := maturityTime(createdAt, 1)
	require.NoError(err)
	require.Equal(createdAt+_secondsPerYear, maturesAt)

	maturesAt, err = maturityTime(createdAt, 2)
	require.NoError(err)
	require.Equal(createdAt+2*_secondsPerYear, maturesAt)

	// maturity must stay within the signed 64-bit timestamp range
	_, err = maturityTime(uint64(math.MaxInt64)-_secondsPerYear/2, 1)
	require.Equal(ErrMathOverflow, errors.Cause(err))
	_, err = maturityTime(math.MaxUint64-_secondsPerYear/2, 1)
	require.Equal(ErrMathOverflow, errors.Cause(err))
}

func TestTotalPayout(t *testing.T) {
	require := require.New(t)

	payout, err := totalPayout(1000, 1)
	require.NoError(err)
	require.Equal(uint64(1000), payout)

	payout, err = totalPayout(1000, 2)
	require.NoError(err)
	require.Equal(uint64(2000), payout)

	_, err = totalPayout(math.MaxUint64/2+1, 2)
	require.Equal(ErrMathOverflow, errors.Cause(err))
}
