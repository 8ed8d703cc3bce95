package cli

import (
	"fileencryptor/consts"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/logger/console"
	"fileencryptor/stages/auxiliary"
	"fileencryptor/stages/router"

	"github.com/common-nighthawk/go-figure"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool

	// Logger is rebuilt for every command, it prints to the console and
	// forwards to the file log.
	Logger   logger.Logger = logger.Nop{}
	fileLog  logger.Logger = logger.Nop{}
	settings *auxiliary.Settings
)

const description = `Encrypts, decrypts and reads files protected by a passphrase.

Run without a command to open the terminal UI.`

var rootCmd = &cobra.Command{
	Use:           consts.APP_NAME,
	Short:         "Passphrase based file encryption",
	Version:       consts.APP_VERSION,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c := console.New(verbose, debug)
		c.Out, c.Err = cmd.OutOrStdout(), cmd.ErrOrStderr()
		Logger = logger.Multi{c, fileLog}
		Logger.Log(logger.DebugLevel, "running %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.Long = figure.NewFigure(consts.APP_TITLE, "", true).String() + "\n" + description

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

// Execute runs the command line. fileLog receives every record, the console
// only what the verbosity flags allow.
func Execute(s *auxiliary.Settings, l logger.Logger) error {
	settings, fileLog = s, l
	return rootCmd.Execute()
}

// The TUI owns the terminal, so it only logs to the file.
func runTUI() error {
	app := tview.NewApplication()

	stages := router.NewStages(app, fileLog, core.NewCore(fileLog), settings)
	pages, err := stages.InitStages()
	if err != nil {
		return err
	}

	return app.SetRoot(pages, true).Run()
}
