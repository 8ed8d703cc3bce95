package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fileencryptor/cipher"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/stages/interaction"
	"fileencryptor/utils"

	"github.com/briandowns/spinner"
	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var (
	passwordStdin bool
	output        string
	jobs          int
)

const defaultJobs = 4

func addPassFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&passwordStdin, "password-stdin", false, "read the passphrase from the first line of stdin")
}

func addBatchFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&output, "output", "o", "", "write to this path instead of overwriting the input (single file only)")
	fs.IntVarP(&jobs, "jobs", "j", defaultJobs, "number of files processed at once")
}

func checkOutput(args []string) error {
	if output != "" && len(args) > 1 {
		return errors.New("--output needs exactly one input file")
	}
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	return nil
}

// uniquePaths keeps the first of every group of args naming the same file,
// "a.txt" and "./a.txt" would otherwise be processed twice.
func uniquePaths(args []string) []string {
	seen := make(map[string]bool, len(args))
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		key := filepath.Clean(arg)
		if abs, err := filepath.Abs(arg); err == nil {
			key = abs
		}
		if seen[key] {
			Logger.Log(logger.WarnLevel, "skipping %s, already queued", arg)
			continue
		}
		seen[key] = true
		paths = append(paths, arg)
	}
	return paths
}

// readPassphrase reads from stdin with --password-stdin and prompts without
// echo otherwise. confirm asks a second time and requires both to match.
func readPassphrase(cmd *cobra.Command, confirm bool) ([]byte, error) {
	if passwordStdin {
		return readLine(cmd.InOrStdin())
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal, use --password-stdin")
	}

	pwd, err := prompt(cmd.ErrOrStderr(), fd, "Passphrase: ")
	if err != nil {
		return nil, err
	}
	if !confirm {
		return pwd, nil
	}

	again, err := prompt(cmd.ErrOrStderr(), fd, "Confirm passphrase: ")
	if err != nil {
		utils.Zero(pwd)
		return nil, err
	}
	defer utils.Zero(again)

	if !bytes.Equal(pwd, again) {
		utils.Zero(pwd)
		return nil, errors.New(interaction.MsgMismatch)
	}
	return pwd, nil
}

func prompt(w io.Writer, fd int, label string) ([]byte, error) {
	fmt.Fprint(w, label)
	pwd, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return pwd, nil
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return nil, errors.New("no passphrase on stdin")
	}
	return line, nil
}

// >>>

// startSpinner only spins when neither verbose nor debug output is wanted,
// since log lines would tear it apart. The returned func stops it and prints
// FinalMSG to out.
func startSpinner(out io.Writer, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		Logger.Log(logger.WarnLevel, "failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Log(logger.InfoLevel, "%s", message)
	}

	cleanup := func() {
		finalMsg := s.FinalMSG
		s.FinalMSG = ""
		if !verbose && !debug {
			s.Stop()
		}
		if finalMsg != "" {
			if !strings.HasSuffix(finalMsg, "\n") {
				finalMsg += "\n"
			}
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

func newService() *interaction.Service {
	return interaction.NewService(Logger, core.NewCore(Logger), settings)
}

type outcome struct {
	path string
	res  *interaction.Result
	err  error
}

// runBatch runs command on every path, at most jobs at a time. A failure
// does not stop the other files. Each request gets its own copy of pwd,
// which the service zeroes.
func runBatch(command interaction.Command, paths []string, alg cipher.Algorithm, pwd []byte) []outcome {
	service := newService()
	outcomes := make([]outcome, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			res, err := service.Do(&interaction.Request{
				Command:   command,
				Path:      path,
				Out:       output,
				Algorithm: alg,
				Pwd:       bytes.Clone(pwd),
				Confirm:   bytes.Clone(pwd),
			})
			outcomes[i] = outcome{path: path, res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func report(outcomes []outcome) string {
	var b strings.Builder
	for _, o := range outcomes {
		if o.err != nil {
			fmt.Fprintf(&b, "%s %s: %v\n", color.RedString("✗"), o.path, o.err)
			continue
		}
		fmt.Fprintf(&b, "%s %s: %s (%s -> %s)\n",
			color.GreenString("✓"),
			o.res.Message,
			color.YellowString(o.res.Out),
			units.HumanSize(float64(o.res.InSize)),
			units.HumanSize(float64(o.res.OutSize)),
		)
	}
	return b.String()
}

func failures(outcomes []outcome) error {
	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
}
