package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtzero/awsume/lib"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "whoami prints the account id behind the current credentials",
	RunE:  whoamiRun,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoamiRun(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return ErrTooManyArguments
	}

	source, err := sourceCredentialsFromEnv()
	if err != nil {
		return err
	}

	// no cache and no prompting involved in an identity lookup
	p := lib.NewProvider(nil, stderrNotifier(), nil)

	fmt.Println(p.GetAccountId(source))
	return nil
}
