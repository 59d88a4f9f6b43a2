package lib

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	log "github.com/sirupsen/logrus"

	"github.com/jtzero/awsume/internal/sessioncache"
)

// AccountUnavailable is returned by GetAccountId when the caller identity
// lookup fails for any reason. Identity is advisory metadata only.
const AccountUnavailable = "Unavailable"

// Notifier receives human-readable success messages, typically expiration
// notices. Failures never pass through a Notifier; they are returned as
// errors.
type Notifier interface {
	Notify(message string)
}

// SessionCache persists session tokens between invocations so a still-valid
// token can be reused without re-prompting for MFA.
type SessionCache interface {
	Get(k sessioncache.Key) *sessioncache.Session
	Put(k sessioncache.Key, session *sessioncache.Session) error
}

// RoleAssumptionRequest describes a single AssumeRole call. Optional fields
// are zero-valued when absent and omitted from the STS call.
type RoleAssumptionRequest struct {
	RoleArn             string
	SessionName         string
	Region              string
	ExternalId          string
	RoleDurationSeconds int64
	MfaSerial           string
	MfaToken            string
}

// SessionTokenRequest describes a single GetSessionToken call.
type SessionTokenRequest struct {
	Region      string
	MfaSerial   string
	MfaToken    string
	IgnoreCache bool
}

// Provider acquires temporary credentials from STS on behalf of a set of
// source credentials. All collaborators are injected; a zero Provider works
// but will not cache, notify, or prompt through anything but the terminal.
type Provider struct {
	Cache    SessionCache
	Notifier Notifier
	MFA      TokenSource

	// STSClientFactory overrides construction of the STS client. Tests
	// install call-counting fakes here.
	STSClientFactory func(source Credentials, region string) stsiface.STSAPI
}

func NewProvider(cache SessionCache, notifier Notifier, mfa TokenSource) *Provider {
	if mfa == nil {
		mfa = PromptTokenSource{}
	}
	return &Provider{
		Cache:    cache,
		Notifier: notifier,
		MFA:      mfa,
	}
}

// AssumeRole exchanges the source credentials for role credentials. Every
// call hits STS; role credentials are never cached.
func (p *Provider) AssumeRole(source Credentials, req RoleAssumptionRequest) (Credentials, error) {
	region := req.Region
	if region == "" {
		region = DefaultRegion
	}
	sessionName := req.SessionName
	if sessionName == "" {
		// a timestamp will hopefully end up unique
		sessionName = fmt.Sprintf("%d", time.Now().UTC().UnixNano())
	}

	log.Debugf("assuming role: %s", req.RoleArn)
	log.Debugf("session name: %s", sessionName)

	input := &sts.AssumeRoleInput{
		RoleSessionName: aws.String(sessionName),
		RoleArn:         aws.String(req.RoleArn),
	}
	if req.ExternalId != "" {
		input.ExternalId = aws.String(req.ExternalId)
	}
	if req.RoleDurationSeconds != 0 {
		input.DurationSeconds = aws.Int64(req.RoleDurationSeconds)
	}
	if req.MfaSerial != "" {
		token, err := p.resolveMfaToken(req.MfaToken)
		if err != nil {
			return Credentials{}, &RoleAuthenticationError{Err: err}
		}
		input.SerialNumber = aws.String(req.MfaSerial)
		input.TokenCode = aws.String(token)
	}

	client, err := p.stsClient(source, region)
	if err != nil {
		return Credentials{}, &RoleAuthenticationError{Err: err}
	}
	resp, err := client.AssumeRole(input)
	if err != nil {
		return Credentials{}, &RoleAuthenticationError{Err: err}
	}
	if resp.Credentials == nil {
		return Credentials{}, &RoleAuthenticationError{Err: errors.New("no credentials in AssumeRole response")}
	}

	creds := fromSTSCredentials(resp.Credentials, region)
	log.Debug("role credentials received")
	p.notify("Role credentials will expire " + FormatLocal(creds.Expiration))
	return creds, nil
}

// GetSessionToken returns a session token for the source credentials,
// reusing a still-valid cached token unless the request forbids it. A fresh
// token is written back to the cache best-effort; a failed write never
// fails the call.
func (p *Provider) GetSessionToken(source Credentials, req SessionTokenRequest) (Credentials, error) {
	region := req.Region
	if region == "" {
		region = DefaultRegion
	}
	cacheKey := sessioncache.KeyForAccessKey{AccessKeyId: source.AccessKeyId}

	if !req.IgnoreCache && p.Cache != nil {
		if session := p.Cache.Get(cacheKey); session.Valid() {
			log.Debug("using cached session token")
			p.notify("Session token will expire at " + FormatLocal(session.Expiration))
			return fromSession(session), nil
		}
	}

	log.Debug("getting session token")
	input := &sts.GetSessionTokenInput{}
	if req.MfaSerial != "" {
		token, err := p.resolveMfaToken(req.MfaToken)
		if err != nil {
			return Credentials{}, &UserAuthenticationError{Err: err}
		}
		input.SerialNumber = aws.String(req.MfaSerial)
		input.TokenCode = aws.String(token)
	}

	client, err := p.stsClient(source, region)
	if err != nil {
		return Credentials{}, &UserAuthenticationError{Err: err}
	}
	resp, err := client.GetSessionToken(input)
	if err != nil {
		return Credentials{}, &UserAuthenticationError{Err: err}
	}
	if resp.Credentials == nil {
		return Credentials{}, &UserAuthenticationError{Err: errors.New("no credentials in GetSessionToken response")}
	}

	creds := fromSTSCredentials(resp.Credentials, region)
	log.Debug("session token received")
	if p.Cache != nil {
		if err := p.Cache.Put(cacheKey, toSession(creds)); err != nil {
			log.Warnf("failed to cache session token: %s", err)
		}
	}
	if !creds.Expiration.IsZero() {
		p.notify("Session token will expire at " + FormatLocal(creds.Expiration))
	}
	return creds, nil
}

// GetAccountId looks up the account behind the given credentials. The
// lookup is purely informational, so any failure collapses to
// AccountUnavailable rather than an error.
func (p *Provider) GetAccountId(creds Credentials) string {
	region := creds.Region
	if region == "" {
		region = DefaultRegion
	}
	client, err := p.stsClient(creds, region)
	if err != nil {
		return AccountUnavailable
	}
	resp, err := client.GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil || resp.Account == nil {
		return AccountUnavailable
	}
	return *resp.Account
}

func (p *Provider) stsClient(source Credentials, region string) (stsiface.STSAPI, error) {
	if p.STSClientFactory != nil {
		return p.STSClientFactory(source, region), nil
	}
	sess, err := awssession.NewSession(&aws.Config{
		Region: aws.String(region),
		Credentials: credentials.NewStaticCredentials(
			source.AccessKeyId,
			source.SecretAccessKey,
			source.SessionToken,
		),
	})
	if err != nil {
		return nil, err
	}
	return sts.New(sess), nil
}

func (p *Provider) notify(message string) {
	if p.Notifier != nil {
		p.Notifier.Notify(message)
	}
}
