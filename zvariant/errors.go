package zvariant

import (
	"errors"
	"fmt"
)

// ErrIncorrectType is returned when a declared or expected signature
// does not match an observed one: appending a value whose signature
// disagrees with the dictionary's declared pair, adding a native value
// of the wrong type, or extracting a stored value as a native type it
// does not hold. These are schema mismatches, not transient failures.
var ErrIncorrectType = errors.New("zvariant: incorrect type")

// incorrectType wraps ErrIncorrectType with expected/observed context.
func incorrectType(want, got Signature) error {
	return fmt.Errorf("%w: want signature %q, got %q", ErrIncorrectType, string(want), string(got))
}
