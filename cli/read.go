package cli

import (
	"bytes"
	"fmt"

	"fileencryptor/stages/interaction"
	"fileencryptor/utils"

	"github.com/spf13/cobra"
)

func init() {
	addPassFlags(readCmd.Flags())
}

var readCmd = &cobra.Command{
	Use:   "read FILE",
	Short: "Prints the decrypted text of FILE, nothing is written to disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pwd, err := readPassphrase(cmd, false)
		if err != nil {
			return err
		}
		defer utils.Zero(pwd)

		_, cleanup := startSpinner(cmd.OutOrStdout(), "Reading "+args[0]+" ...")
		res, err := newService().Do(&interaction.Request{
			Command: interaction.CmdRead,
			Path:    args[0],
			Pwd:     bytes.Clone(pwd),
			Confirm: bytes.Clone(pwd),
		})
		cleanup()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		return nil
	},
}
