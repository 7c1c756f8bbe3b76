// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package protocol

import (
	"context"
	"time"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"

	"github.com/advproject/adv-core/pkg/log"
)

type blockCtxKey struct{}

type actionCtxKey struct{}

// BlockCtx provides the handlers with the execution-slot information.
type BlockCtx struct {
	// height of the slot containing the action
	BlockHeight uint64
	// timestamp the host stamped on the slot
	BlockTimeStamp time.Time
}

// ActionCtx provides the handlers with action auxiliary information.
type ActionCtx struct {
	// Caller is the authenticated identity the action was signed by
	Caller address.Address
	// ActionHash is the hash of the action
	ActionHash hash.Hash256
	// Nonce is the nonce of the action
	Nonce uint64
}

// WithBlockCtx adds BlockCtx into context.
func WithBlockCtx(ctx context.Context, blkCtx BlockCtx) context.Context {
	return context.WithValue(ctx, blockCtxKey{}, blkCtx)
}

// GetBlockCtx gets BlockCtx
func GetBlockCtx(ctx context.Context) (BlockCtx, bool) {
	blkCtx, ok := ctx.Value(blockCtxKey{}).(BlockCtx)
	return blkCtx, ok
}

// MustGetBlockCtx must get BlockCtx. If context doesn't exist, this function panics.
func MustGetBlockCtx(ctx context.Context) BlockCtx {
	blkCtx, ok := ctx.Value(blockCtxKey{}).(BlockCtx)
	if !ok {
		log.S().Panic("Miss block context")
	}
	return blkCtx
}

// WithActionCtx adds ActionCtx into context.
func WithActionCtx(ctx context.Context, actionCtx ActionCtx) context.Context {
	return context.WithValue(ctx, actionCtxKey{}, actionCtx)
}

// GetActionCtx gets ActionCtx
func GetActionCtx(ctx context.Context) (ActionCtx, bool) {
	actionCtx, ok := ctx.Value(actionCtxKey{}).(ActionCtx)
	return actionCtx, ok
}

// MustGetActionCtx must get ActionCtx. If context doesn't exist, this function panics.
func MustGetActionCtx(ctx context.Context) ActionCtx {
	actionCtx, ok := ctx.Value(actionCtxKey{}).(ActionCtx)
	if !ok {
		log.S().Panic("Miss action context")
	}
	return actionCtx
}
