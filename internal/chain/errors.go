package chain

import "github.com/sirkon/errors"

const (
	// ErrNilNode операции передан nil там, где требуется узел.
	ErrNilNode errors.Const = "nil node"
)
