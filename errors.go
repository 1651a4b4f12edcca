package ren

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the resource-creation failure classes. The concrete
// *CompileError, *LinkError, and *ValidateError values unwrap to these, so
// callers can match the class with errors.Is and still reach the raw id and
// diagnostic text with errors.As.
var (
	ErrCompile  = errors.New("ren: shader stage compilation failed")
	ErrLink     = errors.New("ren: shader program link failed")
	ErrValidate = errors.New("ren: shader program validation failed")
)

// CompileError reports a failed shader stage compilation. ID is the raw id
// the device assigned to the stage; the stage itself has already been
// released by the time the caller sees the error, so the id correlates the
// failure with device debug output rather than naming a live object.
type CompileError struct {
	ID    uint32
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("ren: compiling %s stage [%d]: %s", e.Stage, e.ID, trimLog(e.Log))
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError reports a failed shader program link. The program has been
// released; ID is its raw id, Log the full linker diagnostic text.
type LinkError struct {
	ID  uint32
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("ren: linking program [%d]: %s", e.ID, trimLog(e.Log))
}

func (e *LinkError) Unwrap() error { return ErrLink }

// ValidateError reports a program that linked but failed the validation
// step that follows every link.
type ValidateError struct {
	ID  uint32
	Log string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("ren: validating program [%d]: %s", e.ID, trimLog(e.Log))
}

func (e *ValidateError) Unwrap() error { return ErrValidate }

// trimLog strips the trailing newline device compilers tend to append.
func trimLog(log string) string {
	log = strings.TrimSpace(log)
	if log == "" {
		return "no diagnostic output"
	}
	return log
}
