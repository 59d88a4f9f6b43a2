package lib

import (
	"time"

	"github.com/aws/aws-sdk-go/service/sts"

	"github.com/jtzero/awsume/internal/sessioncache"
)

// DefaultRegion is used whenever a caller does not name a region.
const DefaultRegion = "us-east-1"

// Credentials is a set of temporary AWS credentials plus the region they
// were issued for. Expiration is always kept in the local time zone.
type Credentials struct {
	AccessKeyId     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
	Region          string
}

func fromSTSCredentials(creds *sts.Credentials, region string) Credentials {
	out := Credentials{Region: region}
	if creds.AccessKeyId != nil {
		out.AccessKeyId = *creds.AccessKeyId
	}
	if creds.SecretAccessKey != nil {
		out.SecretAccessKey = *creds.SecretAccessKey
	}
	if creds.SessionToken != nil {
		out.SessionToken = *creds.SessionToken
	}
	if creds.Expiration != nil {
		out.Expiration = creds.Expiration.Local()
	}
	return out
}

func fromSession(s *sessioncache.Session) Credentials {
	return Credentials{
		AccessKeyId:     s.AccessKeyId,
		SecretAccessKey: s.SecretAccessKey,
		SessionToken:    s.SessionToken,
		Expiration:      s.Expiration.Local(),
		Region:          s.Region,
	}
}

func toSession(c Credentials) *sessioncache.Session {
	return &sessioncache.Session{
		AccessKeyId:     c.AccessKeyId,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		Expiration:      c.Expiration,
		Region:          c.Region,
	}
}
