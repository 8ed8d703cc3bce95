package cli

import (
	"fileencryptor/cipher"
	"fileencryptor/stages/interaction"
	"fileencryptor/utils"

	"github.com/spf13/cobra"
)

var algorithm string

func init() {
	encryptCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "aes-gcm, aes-gcm-siv or chacha20-poly1305 (default from settings)")
	addBatchFlags(encryptCmd.Flags())
	addPassFlags(encryptCmd.Flags())
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt FILE...",
	Short: "Encrypts files in place, or into --output",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		args = uniquePaths(args)
		if err := checkOutput(args); err != nil {
			return err
		}

		alg := settings.DefaultAlgorithm
		if algorithm != "" {
			parsed, err := cipher.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			alg = parsed
		}

		pwd, err := readPassphrase(cmd, true)
		if err != nil {
			return err
		}
		defer utils.Zero(pwd)

		spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Encrypting files with "+alg.Label()+" ...")
		defer cleanup()

		outcomes := runBatch(interaction.CmdEncrypt, args, alg, pwd)
		spinner.FinalMSG = report(outcomes)
		return failures(outcomes)
	},
}
