// sessioncache caches session tokens between invocations so a still-valid
// token can be reused without forcing an MFA re-prompt.
//
// sessioncache splits Stores (the way cache items are stored) from Keys
// (the way cache items are looked up/replaced)
package sessioncache

import (
	"encoding/json"
	"time"
)

// Session is one cached set of temporary credentials.
type Session struct {
	AccessKeyId     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
	Region          string `json:",omitempty"`
}

func (s *Session) Bytes() ([]byte, error) {
	return json.Marshal(s)
}

// Valid reports whether s can satisfy a request without going back to STS:
// every credential field populated and an expiration strictly in the
// future. A nil session is never valid.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}
	if s.AccessKeyId == "" || s.SecretAccessKey == "" || s.SessionToken == "" {
		return false
	}
	return s.Expiration.After(time.Now())
}

// Key is used to compute the cache key for a session
type Key interface {
	Key() string
}
