// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package action

import "github.com/iotexproject/go-pkgs/hash"

// SuccessReceiptStatus is the status of a successful operation. Failed operations abort as
// a whole and issue no receipt at all, so there is no failure status.
const SuccessReceiptStatus = uint64(1)

const (
	// TransactionLogTypeNativeTransfer is a plain token transfer between two accounts
	TransactionLogTypeNativeTransfer = "native_transfer"
	// TransactionLogTypeDepositToStake is a deposit from a user account into vault custody
	TransactionLogTypeDepositToStake = "deposit_to_stake"
	// TransactionLogTypeWithdrawStake is a payout from vault custody back to a user account
	TransactionLogTypeWithdrawStake = "withdraw_stake"
)

type (
	// Topics are the topics of a log, the first topic names the event and the following
	// topics index the identities the event refers to
	Topics []hash.Hash256

	// Receipt represents the result of one executed operation
	Receipt struct {
		Status          uint64
		BlockHeight     uint64
		ActionHash      hash.Hash256
		ContractAddress string
		logs            []*Log
		transactionLogs []*TransactionLog
	}

	// Log is an externally observable event emitted by a protocol
	Log struct {
		Address     string
		Topics      Topics
		Data        []byte
		BlockHeight uint64
		ActionHash  hash.Hash256
		Index       uint
	}

	// TransactionLog is the audit record of a single token movement
	TransactionLog struct {
		Type      string
		Sender    string
		Recipient string
		Amount    uint64
	}
)

// AddLogs adds logs into the receipt and filters out nil logs
func (receipt *Receipt) AddLogs(logs ...*Log) *Receipt {
	for _, l := range logs {
		if l != nil {
			receipt.logs = append(receipt.logs, l)
		}
	}
	return receipt
}

// AddTransactionLogs adds transaction logs into the receipt and filters out nil logs
func (receipt *Receipt) AddTransactionLogs(logs ...*TransactionLog) *Receipt {
	for _, l := range logs {
		if l != nil {
			receipt.transactionLogs = append(receipt.transactionLogs, l)
		}
	}
	return receipt
}

// Logs returns the logs attached to the receipt
func (receipt *Receipt) Logs() []*Log {
	return receipt.logs
}

// TransactionLogs returns the transaction logs attached to the receipt
func (receipt *Receipt) TransactionLogs() []*TransactionLog {
	return receipt.transactionLogs
}
