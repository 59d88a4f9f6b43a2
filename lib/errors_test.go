package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticationErrorsWrap(t *testing.T) {
	cause := errors.New("AccessDenied")

	roleErr := &RoleAuthenticationError{Err: cause}
	assert.Contains(t, roleErr.Error(), "AccessDenied")
	assert.True(t, errors.Is(roleErr, cause))

	userErr := &UserAuthenticationError{Err: cause}
	assert.Contains(t, userErr.Error(), "AccessDenied")
	assert.True(t, errors.Is(userErr, cause))
}
