package timespan

import (
	"errors"
	"fmt"
)

// ErrOverflow reports a parsed duration that cannot be represented
// exactly and finitely in the target type, or that violates the target's
// sign constraint. No partial or clamped value is ever returned.
var ErrOverflow = errors.New("duration overflowed")

// A ParseError reports input that does not match the duration grammar.
type ParseError struct {
	Input string // the complete input string
	Pos   int    // byte offset of the offending text
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s at offset %d", e.Input, e.Msg, e.Pos)
}
