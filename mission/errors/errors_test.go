package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := Newf(CodeOutOfBounds, "cell (%d, %d) is outside", 9, 9)

	if !stderrors.Is(err, New(CodeOutOfBounds, "different message")) {
		t.Error("Expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeCellOccupied, "")) {
		t.Error("Expected errors with different codes not to match")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"nil", nil, ""},
		{"foreign", fmt.Errorf("plain"), CodeUnknown},
		{"direct", New(CodeNullArgument, "nil cell"), CodeNullArgument},
		{"wrapped", fmt.Errorf("record 2: %w", New(CodeMalformedInput, "bad")), CodeMalformedInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CodeOf(test.err); got != test.expected {
				t.Errorf("Expected code %q, got %q", test.expected, got)
			}
		})
	}
}

func TestWrapWithMetadata(t *testing.T) {
	cause := fmt.Errorf("lexer failure")
	err := WrapWithMetadata(CodeMalformedInput, "bad command", map[string]string{MetaField: "command"}, cause)

	if !stderrors.Is(err, cause) {
		t.Error("Expected cause to be reachable through Unwrap")
	}
	if err.Meta(MetaField) != "command" {
		t.Errorf("Expected field metadata 'command', got '%s'", err.Meta(MetaField))
	}
	if New(CodeUnknown, "x").Meta(MetaField) != "" {
		t.Error("Expected empty metadata lookup on error without metadata")
	}
	if !IsCode(err, CodeMalformedInput) {
		t.Error("Expected IsCode to report MALFORMED_INPUT")
	}
}
