package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig Kind = "invalid_config"
	NotFound      Kind = "not_found"
	ToolNotFound  Kind = "tool_not_found"
	ToolFailure   Kind = "tool_failure"
	InvalidTag    Kind = "invalid_tag"
	ParseFailure  Kind = "parse_failure"
	Internal      Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func New(kind Kind, op, path, msg string) error {
	return Wrap(kind, op, path, stderrors.New(msg))
}

// KindOf returns the kind of the first AppError in err's chain, or Internal
// when the chain carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case NotFound:
		return fmt.Sprintf("Path not found: %s", appErr.Path)
	case ToolNotFound:
		return fmt.Sprintf("exiftool is not available: %v", appErr.Err)
	case ToolFailure:
		return fmt.Sprintf("exiftool failed: %v", appErr.Err)
	case InvalidTag:
		return fmt.Sprintf("Invalid tag: %v", appErr.Err)
	case ParseFailure:
		return fmt.Sprintf("Could not parse exiftool output: %v", appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
