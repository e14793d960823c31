package extractor

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeIO                ErrorCode = "IO_ERROR"
	CodeParse             ErrorCode = "PARSE_ERROR"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its code.
var (
	ErrUnsupportedFormat = errors.New("unsupported extraction format")
	ErrIO                = errors.New("file could not be read")
	ErrParse             = errors.New("file could not be parsed")
)

// Error is returned by the factory and by every extractor constructor.
type Error struct {
	Code ErrorCode
	Path string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case CodeUnsupportedFormat:
		msg = fmt.Sprintf("unsupported extraction format of file [%s]", e.Path)
	case CodeIO:
		msg = fmt.Sprintf("failed to read file [%s]", e.Path)
	case CodeParse:
		msg = fmt.Sprintf("failed to parse file [%s]", e.Path)
	default:
		msg = fmt.Sprintf("extraction failed for file [%s]", e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnsupportedFormat:
		return e.Code == CodeUnsupportedFormat
	case ErrIO:
		return e.Code == CodeIO
	case ErrParse:
		return e.Code == CodeParse
	}
	return false
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func ioError(path string, err error) error {
	return &Error{Code: CodeIO, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &Error{Code: CodeParse, Path: path, Err: err}
}
