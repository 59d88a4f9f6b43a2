package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/jtzero/awsume/lib"
)

// printCredentialExports writes export commands for creds to stdout so the
// caller can `source <(awsume ...)`. The expiration and region lines are
// skipped when absent.
func printCredentialExports(creds lib.Credentials) {
	printExport("AWS_ACCESS_KEY_ID", creds.AccessKeyId)
	printExport("AWS_SECRET_ACCESS_KEY", creds.SecretAccessKey)
	printExport("AWS_SESSION_TOKEN", creds.SessionToken)
	if creds.Region != "" {
		printExport("AWS_DEFAULT_REGION", creds.Region)
	}
	if !creds.Expiration.IsZero() {
		printExport("AWS_SESSION_EXPIRATION", lib.FormatLocal(creds.Expiration))
	}
}

func printExport(varName, varValue string) {
	exportString := "export %s=%s\n"
	myShell, hasShell := os.LookupEnv("SHELL")
	if hasShell && strings.Contains(myShell, "fish") {
		exportString = "set -x %s %s\n"
	}
	fmt.Printf(exportString, varName, shellescape.Quote(varValue))
}
