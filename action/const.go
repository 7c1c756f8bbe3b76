// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import "github.com/pkg/errors"

// CurrentVersion is the version of the action envelope format in use
const CurrentVersion = uint32(1)

var (
	// ErrAddress indicates error of address
	ErrAddress = errors.New("invalid address")
	// ErrNilAction indicates a nil action
	ErrNilAction = errors.New("action is nil")
)
