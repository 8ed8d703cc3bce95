package cli

import (
	"fileencryptor/stages/interaction"
	"fileencryptor/utils"

	"github.com/spf13/cobra"
)

func init() {
	addBatchFlags(decryptCmd.Flags())
	addPassFlags(decryptCmd.Flags())
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt FILE...",
	Short: "Decrypts files in place, or into --output",
	Long:  "Decrypts files in place, or into --output. The algorithm is read from each file.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		args = uniquePaths(args)
		if err := checkOutput(args); err != nil {
			return err
		}

		pwd, err := readPassphrase(cmd, false)
		if err != nil {
			return err
		}
		defer utils.Zero(pwd)

		spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Decrypting files ...")
		defer cleanup()

		outcomes := runBatch(interaction.CmdDecrypt, args, 0, pwd)
		spinner.FinalMSG = report(outcomes)
		return failures(outcomes)
	},
}
