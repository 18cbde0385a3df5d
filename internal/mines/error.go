package mines

import "errors"

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidSize    = errors.New("field dimensions must be positive")
	ErrBadAction      = errors.New("choose 'free' or 'mine' as third argument")
)

type CommandError struct {
	message string
	cause   error
}

// [CommandError] implements [error]
func (e CommandError) Error() string {
	return e.message
}

// Every [CommandError] matches [ErrInvalidCommand] under [errors.Is].
func (e CommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}

func (e CommandError) Unwrap() error {
	return e.cause
}

func invalidCommand(message string) error {
	return CommandError{message: message}
}

// badAction reports an unknown action and matches [ErrBadAction] as well.
func badAction() error {
	return CommandError{message: ErrBadAction.Error(), cause: ErrBadAction}
}
