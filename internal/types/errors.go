package types

import (
	"errors"
	"fmt"
)

// The two kinds of caller error. Every error this module returns matches
// exactly one of these under errors.Is.
var (
	// ErrInvalidAttribute indicates a name outside the closed vocabulary.
	ErrInvalidAttribute = errors.New("invalid attribute")
	// ErrInvalidValue indicates a value outside the attribute's domain.
	ErrInvalidValue = errors.New("invalid value")
)

type Error struct {
	Kind    error
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	return fmt.Sprintf("%+v: %+v", err.Code, err.Context)
}

func (err Error) Is(target error) bool {
	return target == err.Kind
}

func NewError(kind error, code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Kind: kind, Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
