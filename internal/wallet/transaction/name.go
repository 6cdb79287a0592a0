package transaction

import (
	"github.com/pkg/errors"
)

const (
	maxNameLength  = 13
	maxNameRegular = 12
)

var ErrInvalidName = errors.New("invalid account name")

// Name is an account, action or permission name.
//
// Valid names have up to 12 characters from a-z, 1-5 and '.', optionally followed by a
// 13th character from a-j, 1-5 and '.'.
type Name string

func (n Name) String() string {
	return string(n)
}

// Validate reports whether n follows the naming rules.
func (n Name) Validate() error {
	s := string(n)
	if len(s) == 0 || len(s) > maxNameLength {
		return errors.Wrapf(ErrInvalidName, "%q must have 1 to %d characters", s, maxNameLength)
	}

	for i := range len(s) {
		c := s[i]
		if i == maxNameRegular {
			if !isThirteenthNameChar(c) {
				return errors.Wrapf(ErrInvalidName, "%q has invalid 13th character %q", s, c)
			}
			continue
		}
		if !isNameChar(c) {
			return errors.Wrapf(ErrInvalidName, "%q has invalid character %q", s, c)
		}
	}

	return nil
}

func isNameChar(c byte) bool {
	return c == '.' || (c >= 'a' && c <= 'z') || (c >= '1' && c <= '5')
}

func isThirteenthNameChar(c byte) bool {
	return c == '.' || (c >= 'a' && c <= 'j') || (c >= '1' && c <= '5')
}
