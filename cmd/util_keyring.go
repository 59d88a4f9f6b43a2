package cmd

import (
	"os"

	"github.com/99designs/keyring"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/jtzero/awsume/lib"
)

// changing any of these will break keyring compatibility
const (
	keyringServiceName             = "awsume"
	keyringLibSecretCollectionName = "awsvault"
	keyringFileDir                 = "~/.awsume/"
)

func keyringPrompt(prompt string) (string, error) {
	return lib.PromptWithOutput(prompt, true, os.Stderr)
}

func openKeyring(b string) (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	if b != "" {
		allowedBackends = append(allowedBackends, keyring.BackendType(b))
	}

	fileDir, err := homedir.Expand(keyringFileDir)
	if err != nil {
		return nil, err
	}

	return keyring.Open(keyring.Config{
		AllowedBackends:          allowedBackends,
		KeychainTrustApplication: true,
		ServiceName:              keyringServiceName,
		LibSecretCollectionName:  keyringLibSecretCollectionName,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyringPrompt,
	})
}
