package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heshanpadmasiri/codeconv/syntax"
)

var (
	// ErrWrapMismatch means the synthetic declaration a snippet was wrapped
	// in could not be found again. It indicates a bug in the wrapping.
	ErrWrapMismatch = errors.New("wrapper declaration not found")
	// ErrUnknownTree is returned for trees the accumulator never converted
	ErrUnknownTree = errors.New("tree was not converted")
)

// ParseError reports source text that does not parse
type ParseError struct {
	Tree        string
	Diagnostics []syntax.Diagnostic
}

func (e *ParseError) Error() string {
	lines := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		lines = append(lines, d.String())
	}
	return fmt.Sprintf("parsing %s: %s", e.Tree, strings.Join(lines, "; "))
}

// ConversionError reports a tree the converter rejected
type ConversionError struct {
	Tree string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Tree, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
