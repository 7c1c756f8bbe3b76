// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package protocol

import (
	"context"

	"github.com/advproject/adv-core/action"
)

// Protocol defines the protocol interfaces atop the ledger
type Protocol interface {
	ActionValidator
	ActionHandler
}

// ActionValidator is the interface of validating an action
type ActionValidator interface {
	Validate(context.Context, action.Action) error
}

// ActionHandler is the interface for the action handlers. For each incoming action, the
// registered protocols are consulted one by one; a protocol parses the sub-type of the
// action to decide whether it handles it, and returns a nil receipt otherwise.
type ActionHandler interface {
	Handle(context.Context, action.Action, StateManager) (*action.Receipt, error)
}
