// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	name     string
	stopErr  error
	started  bool
	stopped  bool
	sequence *[]string
}

func (m *fakeModel) Start(_ context.Context) error {
	m.started = true
	*m.sequence = append(*m.sequence, "start "+m.name)
	return nil
}

func (m *fakeModel) Stop(_ context.Context) error {
	m.stopped = true
	*m.sequence = append(*m.sequence, "stop "+m.name)
	return m.stopErr
}

func TestLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	var sequence []string
	m1 := &fakeModel{name: "m1", sequence: &sequence}
	m2 := &fakeModel{name: "m2", sequence: &sequence}

	var lc Lifecycle
	lc.Add(m1)
	lc.Add(m2)
	require.NoError(lc.OnStart(ctx))
	require.True(m1.started)
	require.True(m2.started)
	require.NoError(lc.OnStop(ctx))
	// models start in order and stop in reverse order
	require.Equal([]string{"start m1", "start m2", "stop m2", "stop m1"}, sequence)
}

func TestLifecycleWithError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	var sequence []string
	err := errors.New("error")
	m1 := &fakeModel{name: "m1", sequence: &sequence}
	m2 := &fakeModel{name: "m2", stopErr: err, sequence: &sequence}

	var lc Lifecycle
	lc.AddModels(m1, m2)
	require.NoError(lc.OnStart(ctx))
	require.Equal(err, lc.OnStop(ctx))
	// the stop error surfaces before m1 gets stopped
	require.True(m2.stopped)
	require.False(m1.stopped)
}
