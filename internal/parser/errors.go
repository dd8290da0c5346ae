package parser

import (
	"fmt"

	"github.com/stone-lang/stonec/internal/token"
)

// Error codes are string constants rather than a typed enum, so a
// diagnostics consumer can match on them without importing this
// package's internals.
const (
	ErrUnexpectedToken = "unexpected_token"
	ErrNoPrefixParse   = "no_prefix_parse"
	ErrExpectedIdent   = "expected_identifier"
)

// ParserError is one parse-time diagnostic.
type ParserError struct {
	Message string
	Code    string
	Pos     token.Position
}

// NewParserError builds a ParserError at pos.
func NewParserError(pos token.Position, message, code string) *ParserError {
	return &ParserError{Message: message, Code: code, Pos: pos}
}

// Error implements the error interface.
func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
