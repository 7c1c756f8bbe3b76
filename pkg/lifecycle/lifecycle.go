// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package lifecycle provides application models' lifecycle management.
package lifecycle

import "context"

// Starter is the interface with a Start method.
type Starter interface {
	Start(context.Context) error
}

// Stopper is the interface with a Stop method.
type Stopper interface {
	Stop(context.Context) error
}

// StartStopper is the interface that groups Start and Stop.
type StartStopper interface {
	Starter
	Stopper
}

// Lifecycle manages the models that live along with the application's lifecycle. Models are started
// in the order they were added and stopped in the reverse order.
type Lifecycle struct {
	models []interface{}
}

// Add adds a model into the lifecycle.
func (lc *Lifecycle) Add(m interface{}) { lc.models = append(lc.models, m) }

// AddModels adds multiple models into the lifecycle.
func (lc *Lifecycle) AddModels(m ...interface{}) { lc.models = append(lc.models, m...) }

// OnStart runs models' Start function if models implement Starter interface.
func (lc *Lifecycle) OnStart(ctx context.Context) error {
	for _, m := range lc.models {
		if starter, ok := m.(Starter); ok {
			if err := starter.Start(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnStop runs models' Stop function if models implement Stopper interface.
func (lc *Lifecycle) OnStop(ctx context.Context) error {
	for i := len(lc.models) - 1; i >= 0; i-- {
		if stopper, ok := lc.models[i].(Stopper); ok {
			if err := stopper.Stop(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
