package engine

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected action. Every kind is recoverable: the player
// simply chooses something else. TerminalState is the exception; only a
// reset leaves it.
type Kind string

const (
	KindInsufficientResource Kind = "insufficient_resource"
	KindInsufficientFocus    Kind = "insufficient_focus"
	KindInvalidTarget        Kind = "invalid_target"
	KindDailyLimitReached    Kind = "daily_limit_reached"
	KindTerminalState        Kind = "terminal_state"
)

// RuleError is a rejection with a player-facing message. Rejections are never
// silent; the message is always suitable for display.
type RuleError struct {
	Kind    Kind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func reject(kind Kind, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsRule unwraps err into a RuleError if it is one.
func AsRule(err error) (*RuleError, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
