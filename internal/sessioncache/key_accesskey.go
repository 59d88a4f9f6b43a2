package sessioncache

// changing this breaks compatibility with previously written caches
const keyPrefix = "aws-credentials-"

// KeyForAccessKey keys the cache by the source credentials' access key id,
// so every identity gets its own session token entry.
type KeyForAccessKey struct {
	AccessKeyId string
}

func (k KeyForAccessKey) Key() string {
	return keyPrefix + k.AccessKeyId
}
