package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/jtzero/awsume/internal/sessioncache"
	"github.com/jtzero/awsume/lib"
)

const (
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// greenNotifier renders success messages green on the given writer,
// normally stderr so stdout stays clean for export lines.
type greenNotifier struct {
	out io.Writer
}

func (n greenNotifier) Notify(message string) {
	fmt.Fprintln(n.out, ansiGreen+message+ansiReset)
}

func stderrNotifier() greenNotifier {
	return greenNotifier{out: os.Stderr}
}

func newProvider() (*lib.Provider, error) {
	kr, err := openKeyring(backend)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open keyring")
	}
	return lib.NewProvider(
		&sessioncache.KeyringStore{Keyring: kr},
		stderrNotifier(),
		lib.PromptTokenSource{},
	), nil
}

// sourceCredentialsFromEnv reads the long-term (or previously exported)
// credentials that authenticate the STS call. Profile files are the larger
// tool's concern, not this one's.
func sourceCredentialsFromEnv() (lib.Credentials, error) {
	accessKeyId := os.Getenv("AWS_ACCESS_KEY_ID")
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKeyId == "" || secretAccessKey == "" {
		return lib.Credentials{}, errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return lib.Credentials{
		AccessKeyId:     accessKeyId,
		SecretAccessKey: secretAccessKey,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	}, nil
}
