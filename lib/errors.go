package lib

// RoleAuthenticationError is returned for any failure while assuming a
// role: denied access, a bad ARN, expired source credentials, a rejected
// MFA code, or a network error. The STS failure modes are opaque at this
// layer, so they are all classified the same way.
type RoleAuthenticationError struct {
	Err error
}

func (e *RoleAuthenticationError) Error() string {
	return "role authentication failed: " + e.Err.Error()
}

func (e *RoleAuthenticationError) Unwrap() error {
	return e.Err
}

// UserAuthenticationError is the session-token counterpart of
// RoleAuthenticationError.
type UserAuthenticationError struct {
	Err error
}

func (e *UserAuthenticationError) Error() string {
	return "user authentication failed: " + e.Err.Error()
}

func (e *UserAuthenticationError) Unwrap() error {
	return e.Err
}
