package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jtzero/awsume/lib"
)

var (
	assumeRoleSessionName string
	assumeRoleRegion      string
	assumeRoleExternalId  string
	assumeRoleDuration    int64
	assumeRoleMfaSerial   string
	assumeRoleMfaToken    string
)

// assumeRoleCmd represents the assume-role command
var assumeRoleCmd = &cobra.Command{
	Use:     "assume-role <role-arn>",
	Short:   "assume-role prints export commands for temporary role credentials",
	Example: "  source <(awsume assume-role arn:aws:iam::123456789012:role/admin)",
	RunE:    assumeRoleRun,
}

func init() {
	RootCmd.AddCommand(assumeRoleCmd)
	assumeRoleCmd.Flags().StringVarP(&assumeRoleSessionName, "session-name", "n", "", "Role session name (generated when empty)")
	assumeRoleCmd.Flags().StringVarP(&assumeRoleRegion, "region", "r", "", "AWS region (default "+lib.DefaultRegion+")")
	assumeRoleCmd.Flags().StringVar(&assumeRoleExternalId, "external-id", "", "External id for the role trust policy")
	assumeRoleCmd.Flags().Int64Var(&assumeRoleDuration, "duration-seconds", 0, "Lifetime of the role credentials in seconds")
	assumeRoleCmd.Flags().StringVarP(&assumeRoleMfaSerial, "mfa-serial", "m", "", "MFA device serial or ARN")
	assumeRoleCmd.Flags().StringVarP(&assumeRoleMfaToken, "mfa-token", "t", "", "MFA one-time code (prompted when required and empty)")
}

func assumeRoleRun(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return ErrTooFewArguments
	}
	if len(args) > 1 {
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

	creds, err := p.AssumeRole(source, lib.RoleAssumptionRequest{
		RoleArn:             args[0],
		SessionName:         assumeRoleSessionName,
		Region:              assumeRoleRegion,
		ExternalId:          assumeRoleExternalId,
		RoleDurationSeconds: assumeRoleDuration,
		MfaSerial:           assumeRoleMfaSerial,
		MfaToken:            assumeRoleMfaToken,
	})
	if err != nil {
		return err
	}

	printCredentialExports(creds)
	return nil
}
