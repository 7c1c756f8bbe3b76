// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package ledger is the execution host. It runs one operation at a time: every protocol
// validates the action, the handlers stage their writes in a fresh working set, and the
// working set commits atomically. A failing operation leaves no trace in the state.
package ledger

import (
	"context"
	"strconv"
	"sync"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/advproject/adv-core/action"
	"github.com/advproject/adv-core/action/protocol"
	"github.com/advproject/adv-core/pkg/lifecycle"
	"github.com/advproject/adv-core/state/factory"
)

var _ledgerMtc = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adv_ledger_operation",
		Help: "Ledger operation",
	},
	[]string{"kind", "succeed"},
)

func init() {
	prometheus.MustRegister(_ledgerMtc)
}

// ErrUnknownAction indicates no registered protocol produced a receipt for the action
var ErrUnknownAction = errors.New("no protocol handled the action")

// Ledger executes operations serially against the state factory
type Ledger struct {
	mutex     sync.Mutex
	lifecycle lifecycle.Lifecycle
	registry  *protocol.Registry
	sf        factory.Factory
	clk       clock.Clock
}

// Option sets an optional field of the ledger
type Option func(*Ledger)

// ClockOption overrides the wall clock, tests use a mock clock to control maturity
func ClockOption(clk clock.Clock) Option {
	return func(l *Ledger) {
		l.clk = clk
	}
}

// New creates a ledger atop the given state factory and protocol registry
func New(sf factory.Factory, registry *protocol.Registry, opts ...Option) *Ledger {
	l := &Ledger{
		registry: registry,
		sf:       sf,
		clk:      clock.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lifecycle.Add(sf)
	return l
}

// Start starts the ledger's underlying components
func (l *Ledger) Start(ctx context.Context) error {
	return l.lifecycle.OnStart(ctx)
}

// Stop stops the ledger's underlying components
func (l *Ledger) Stop(ctx context.Context) error {
	return l.lifecycle.OnStop(ctx)
}

// Execute runs one operation to completion. The registered protocols validate the action
// first, then the first protocol that recognizes it handles it, and the staged writes
// commit as one atomic batch. On any error nothing is committed and no receipt is issued.
func (l *Ledger) Execute(ctx context.Context, act action.Action) (*action.Receipt, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	receipt, err := l.execute(ctx, act)
	_ledgerMtc.WithLabelValues(operationKind(act), strconv.FormatBool(err == nil)).Inc()
	return receipt, err
}

func (l *Ledger) execute(ctx context.Context, act action.Action) (*action.Receipt, error) {
	if act == nil {
		return nil, action.ErrNilAction
	}
	for _, p := range l.registry.All() {
		if err := p.Validate(ctx, act); err != nil {
			return nil, err
		}
	}
	ws, err := l.sf.NewWorkingSet()
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain a working set")
	}
	height, err := ws.Height()
	if err != nil {
		return nil, err
	}
	ctx = protocol.WithBlockCtx(ctx, protocol.BlockCtx{
		BlockHeight:    height,
		BlockTimeStamp: l.clk.Now(),
	})
	ctx = protocol.WithActionCtx(ctx, protocol.ActionCtx{
		Caller:     act.SenderAddress(),
		ActionHash: action.Hash(act),
		Nonce:      act.Nonce(),
	})
	for _, p := range l.registry.All() {
		receipt, err := p.Handle(ctx, act, ws)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			if err := ws.Commit(); err != nil {
				return nil, errors.Wrap(err, "failed to commit the working set")
			}
			return receipt, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownAction, "action type %T", act)
}

func operationKind(act action.Action) string {
	switch act.(type) {
	case *action.CreateVault:
		return "createVault"
	case *action.CreateStake:
		return "stakeTokens"
	case *action.WithdrawStake:
		return "withdrawStake"
	case *action.Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}
