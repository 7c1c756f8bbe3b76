// Copyright (c) 2024 AdvProject
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import "github.com/pkg/errors"

var (
	// ErrStateNotExist defines an error that the state does not exist
	ErrStateNotExist = errors.New("state does not exist")
	// ErrNotEnoughBalance is the error that the balance is not enough
	ErrNotEnoughBalance = errors.New("not enough balance")
	// ErrBalanceOverflow is the error that a balance credit would wrap around
	ErrBalanceOverflow = errors.New("balance overflow")
	// ErrFailedToMarshalState is the error that the state marshaling is failed
	ErrFailedToMarshalState = errors.New("failed to marshal state")
	// ErrFailedToUnmarshalState is the error that the state un-marshaling is failed
	ErrFailedToUnmarshalState = errors.New("failed to unmarshal state")
)

type (
	// Serializer has Serialize method to serialize struct to binary data.
	Serializer interface {
		Serialize() ([]byte, error)
	}

	// Deserializer has Deserialize method to deserialize binary data to struct.
	Deserializer interface {
		Deserialize(data []byte) error
	}
)

// Serialize serializes a state into bytes via its Serializer interface
func Serialize(d interface{}) ([]byte, error) {
	if ss, ok := d.(Serializer); ok {
		return ss.Serialize()
	}
	return nil, errors.Wrapf(ErrFailedToMarshalState, "state %+v doesn't implement Serializer interface", d)
}

// Deserialize deserializes bytes into a state via its Deserializer interface
func Deserialize(x interface{}, data []byte) error {
	if ss, ok := x.(Deserializer); ok {
		return ss.Deserialize(data)
	}
	return errors.Wrapf(ErrFailedToUnmarshalState, "state %+v doesn't implement Deserializer interface", x)
}
