package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jtzero/awsume/lib"
)

var (
	sessionTokenRegion      string
	sessionTokenMfaSerial   string
	sessionTokenMfaToken    string
	sessionTokenIgnoreCache bool
)

// sessionTokenCmd represents the session-token command
var sessionTokenCmd = &cobra.Command{
	Use:     "session-token",
	Short:   "session-token prints export commands for a (cached) session token",
	Example: "  source <(awsume session-token -m arn:aws:iam::123456789012:mfa/me)",
	RunE:    sessionTokenRun,
}

func init() {
	RootCmd.AddCommand(sessionTokenCmd)
	sessionTokenCmd.Flags().StringVarP(&sessionTokenRegion, "region", "r", "", "AWS region (default "+lib.DefaultRegion+")")
	sessionTokenCmd.Flags().StringVarP(&sessionTokenMfaSerial, "mfa-serial", "m", "", "MFA device serial or ARN")
	sessionTokenCmd.Flags().StringVarP(&sessionTokenMfaToken, "mfa-token", "t", "", "MFA one-time code (prompted when required and empty)")
	sessionTokenCmd.Flags().BoolVar(&sessionTokenIgnoreCache, "ignore-cache", false, "Fetch a fresh token even when a valid one is cached")
}

func sessionTokenRun(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return ErrTooManyArguments
	}

	source, err := sourceCredentialsFromEnv()
	if err != nil {
		return err
	}

	p, err := newProvider()
	if err != nil {
		return err
	}

	creds, err := p.GetSessionToken(source, lib.SessionTokenRequest{
		Region:      sessionTokenRegion,
		MfaSerial:   sessionTokenMfaSerial,
		MfaToken:    sessionTokenMfaToken,
		IgnoreCache: sessionTokenIgnoreCache,
	})
	if err != nil {
		return err
	}

	printCredentialExports(creds)
	return nil
}
