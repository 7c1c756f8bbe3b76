// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggers(t *testing.T) {
	require := require.New(t)

	require.NotNil(L())
	require.NotNil(S())

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	require.NoError(InitLoggers(
		GlobalConfig{Zap: &zapCfg},
		map[string]GlobalConfig{"ledger": {}},
	))
	require.NotNil(L())
	require.True(L().Core().Enabled(zap.WarnLevel))
	require.False(L().Core().Enabled(zap.InfoLevel))

	// a registered sub logger is independent of the global one
	sub := Logger("ledger")
	require.NotNil(sub)
	require.True(sub.Core().Enabled(zap.InfoLevel))
	// an unknown name falls back to the global logger
	require.Equal(L(), Logger("no-such-logger"))

	// the empty name is reserved for the global logger
	require.Error(InitLoggers(GlobalConfig{}, map[string]GlobalConfig{"": {}}))
}
