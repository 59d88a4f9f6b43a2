package sessioncache

import (
	"testing"
	"time"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *KeyringStore {
	return &KeyringStore{
		Keyring: keyring.NewArrayKeyring([]keyring.Item{}),
	}
}

func TestKeyringStoreRoundTrip(t *testing.T) {
	store := newTestStore()
	key := KeyForAccessKey{AccessKeyId: "AKIA_TEST"}

	in := &Session{
		AccessKeyId:     "AKIA_TEST",
		SecretAccessKey: "secret",
		SessionToken:    "tok",
		Expiration:      time.Now().Add(time.Hour).Truncate(time.Second),
		Region:          "us-west-2",
	}
	require.NoError(t, store.Put(key, in))

	out := store.Get(key)
	require.NotNil(t, out)
	assert.Equal(t, in.AccessKeyId, out.AccessKeyId)
	assert.Equal(t, in.SecretAccessKey, out.SecretAccessKey)
	assert.Equal(t, in.SessionToken, out.SessionToken)
	assert.Equal(t, in.Region, out.Region)
	assert.True(t, in.Expiration.Equal(out.Expiration))
}

func TestKeyringStoreGetMissing(t *testing.T) {
	store := newTestStore()

	assert.Nil(t, store.Get(KeyForAccessKey{AccessKeyId: "AKIA_NOPE"}))
}

func TestKeyringStoreGetMalformed(t *testing.T) {
	key := KeyForAccessKey{AccessKeyId: "AKIA_TEST"}
	store := &KeyringStore{
		Keyring: keyring.NewArrayKeyring([]keyring.Item{
			{Key: key.Key(), Data: []byte("not json")},
		}),
	}

	assert.Nil(t, store.Get(key))
}

func TestKeyringStorePutOverwrites(t *testing.T) {
	store := newTestStore()
	key := KeyForAccessKey{AccessKeyId: "AKIA_TEST"}

	first := &Session{
		AccessKeyId:     "AKIA_TEST",
		SecretAccessKey: "old",
		SessionToken:    "old-tok",
		Expiration:      time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Put(key, first))

	second := &Session{
		AccessKeyId:     "AKIA_TEST",
		SecretAccessKey: "new",
		SessionToken:    "new-tok",
		Expiration:      time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, store.Put(key, second))

	out := store.Get(key)
	require.NotNil(t, out)
	assert.Equal(t, "new", out.SecretAccessKey)
}

func TestSessionValid(t *testing.T) {
	future := time.Now().Add(time.Hour)

	var absent *Session
	assert.False(t, absent.Valid())

	complete := Session{
		AccessKeyId:     "AKIA_TEST",
		SecretAccessKey: "secret",
		SessionToken:    "tok",
		Expiration:      future,
	}
	assert.True(t, complete.Valid())

	missingKey := complete
	missingKey.AccessKeyId = ""
	assert.False(t, missingKey.Valid())

	missingSecret := complete
	missingSecret.SecretAccessKey = ""
	assert.False(t, missingSecret.Valid())

	missingToken := complete
	missingToken.SessionToken = ""
	assert.False(t, missingToken.Valid())

	expired := complete
	expired.Expiration = time.Now().Add(-time.Second)
	assert.False(t, expired.Valid())

	noExpiration := complete
	noExpiration.Expiration = time.Time{}
	assert.False(t, noExpiration.Valid())
}

func TestKeyForAccessKey(t *testing.T) {
	k := KeyForAccessKey{AccessKeyId: "AKIA_TEST"}
	assert.Equal(t, "aws-credentials-AKIA_TEST", k.Key())
}
