package interfaces

import "errors"

// Repository-level sentinels shared by the DynamoDB implementations.
var (
	// ErrConditionalCheckFailed means a conditional write lost a race with a
	// concurrent writer on the same entity. Callers surface it as a retryable
	// conflict.
	ErrConditionalCheckFailed = errors.New("conditional check failed")

	// ErrAlreadyExists means a create hit an existing primary key.
	ErrAlreadyExists = errors.New("entity already exists")
)
