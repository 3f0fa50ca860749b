package service

import (
	"encoding/json"
	"errors"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/timer"
)

// ErrorCode classifies a command failure for callers.
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeInvalidState    ErrorCode = "INVALID_STATE"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeStorage         ErrorCode = "STORAGE"
	CodeDecode          ErrorCode = "DECODE"
)

// ErrInvalidImport is wrapped by ImportData when any record fails validation.
var ErrInvalidImport = errors.New("import validation failed")

// CommandError is the error type returned by every command.
type CommandError struct {
	Command string
	Code    ErrorCode
	Err     error
}

func (e *CommandError) Error() string {
	return e.Command + ": " + string(e.Code) + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// CodeOf returns the code of the CommandError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// commandError wraps err for command. A nil err stays nil.
func commandError(command string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return err
	}
	return &CommandError{Command: command, Code: classify(err), Err: err}
}

func classify(err error) ErrorCode {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrSessionMissingID),
		errors.Is(err, domain.ErrInvalidStatsDays),
		errors.Is(err, ErrInvalidImport):
		return CodeInvalidArgument
	case errors.Is(err, timer.ErrAlreadyActive),
		errors.Is(err, timer.ErrNotRunning),
		errors.Is(err, timer.ErrNotPaused),
		errors.Is(err, timer.ErrIdle):
		return CodeInvalidState
	case errors.Is(err, repository.ErrNotFound):
		return CodeNotFound
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return CodeDecode
	default:
		return CodeStorage
	}
}
