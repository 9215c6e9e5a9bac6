package resultset

import "github.com/pkg/errors"

var (
	ErrUnknownColumn       = errors.New("unknown column")
	ErrInvalidArguments    = errors.New("invalid arguments")
	ErrInsufficientColumns = errors.New("result must have at least two columns")
)

func unknownColumnError(name string) error {
	return errors.WithMessagef(ErrUnknownColumn, "column %q", name)
}
