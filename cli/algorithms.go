package cli

import (
	"fmt"

	"fileencryptor/cipher"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "Lists the supported algorithms, the default is marked with *",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, alg := range cipher.Algorithms {
			marker := " "
			if settings != nil && alg == settings.DefaultAlgorithm {
				marker = color.GreenString("*")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d  %-18s %s\n", marker, alg.ID(), alg.String(), alg.Label())
		}
	},
}
