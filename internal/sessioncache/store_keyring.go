package sessioncache

import (
	"encoding/json"

	"github.com/99designs/keyring"
	log "github.com/sirupsen/logrus"

	"golang.org/x/xerrors"
)

// KeyringStore stores each session as its own keyring item. With the file
// backend this is one file per source access key id under the keyring dir.
type KeyringStore struct {
	Keyring keyring.Keyring
}

// Get returns the session stored under k, or nil when no usable record
// exists. A missing or malformed record is a cache miss, never an error;
// callers decide reusability with Session.Valid.
func (s *KeyringStore) Get(k Key) *Session {
	keyStr := k.Key()

	item, err := s.Keyring.Get(keyStr)
	if err != nil {
		log.Debugf("cache get `%s`: miss: %s", keyStr, err)
		return nil
	}

	var session Session
	if err := json.Unmarshal(item.Data, &session); err != nil {
		log.Debugf("cache get `%s`: malformed: %s", keyStr, err)
		return nil
	}

	log.Debugf("cache get `%s`: hit", keyStr)
	return &session
}

// Put overwrites whatever was stored under k. The returned error is for
// logging only; caching is best-effort and callers must not fail on it.
func (s *KeyringStore) Put(k Key, session *Session) error {
	keyStr := k.Key()

	bytes, err := session.Bytes()
	if err != nil {
		log.Debugf("cache put `%s`: error (marshalling): %s", keyStr, err)
		return xerrors.Errorf("marshalling session for %q: %w", keyStr, err)
	}

	item := keyring.Item{
		Key:                         keyStr,
		Label:                       "awsume session for " + keyStr,
		Data:                        bytes,
		KeychainNotTrustApplication: false,
	}
	if err := s.Keyring.Set(item); err != nil {
		log.Debugf("cache put `%s`: error (writing): %s", keyStr, err)
		return xerrors.Errorf("writing session for %q: %w", keyStr, err)
	}
	log.Debugf("cache put `%s`: success", keyStr)

	return nil
}
