package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fileencryptor/cipher"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/stages/auxiliary"
	"fileencryptor/stages/interaction"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState puts every flag variable back to its default, cobra only
// writes the flags that were passed.
func resetGlobalState(t *testing.T) *bytes.Buffer {
	t.Helper()

	verbose, debug = false, false
	passwordStdin, output, algorithm, jobs = false, "", "", defaultJobs
	settings = &auxiliary.Settings{DefaultAlgorithm: cipher.AESGCM, StartDir: t.TempDir()}
	fileLog, Logger = logger.Nop{}, logger.Nop{}
	color.NoColor = true

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return out
}

func run(stdin string, args ...string) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	return rootCmd.Execute()
}

func writeFiles(t *testing.T, contents map[string]string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for name, content := range contents {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	return dir, paths
}

func TestCLI_EncryptDecrypt(t *testing.T) {
	out := resetGlobalState(t)
	contents := map[string]string{"alpha.txt": "alpha", "bravo.txt": "bravo bravo"}
	dir, paths := writeFiles(t, contents)

	args := append([]string{"encrypt", "--password-stdin", "-a", "chacha20-poly1305", "--jobs", "2"}, paths...)
	require.NoError(t, run("hunter22\n", args...))
	assert.Equal(t, 2, strings.Count(out.String(), "✓ "+interaction.MsgEncrypted))

	for name, content := range contents {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Len(t, data, len(content)+core.Overhead)
		assert.Equal(t, cipher.ChaCha20Poly1305.ID(), data[0])
	}

	out.Reset()
	args = append([]string{"decrypt", "--password-stdin"}, paths...)
	err := run("opensesame\n", args...)
	require.Error(t, err)
	assert.Equal(t, "2 of 2 files failed", err.Error())
	assert.Equal(t, 2, strings.Count(out.String(), "✗ "))
	assert.Contains(t, out.String(), interaction.MsgWrongPass)

	for name, content := range contents {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Len(t, data, len(content)+core.Overhead, "failed decrypt must leave %s alone", name)
	}

	out.Reset()
	require.NoError(t, run("hunter22\r\n", args...))
	assert.Equal(t, 2, strings.Count(out.String(), "✓ "+interaction.MsgDecrypted))

	for name, content := range contents {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	}
}

func TestCLI_OutputAndRead(t *testing.T) {
	out := resetGlobalState(t)
	dir, paths := writeFiles(t, map[string]string{"note.txt": "meet at noon\n"})
	dst := filepath.Join(dir, "note.enc")

	require.NoError(t, run("hunter22\n", "encrypt", "--password-stdin", "-o", dst, paths[0]))

	src, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "meet at noon\n", string(src), "source must be untouched with --output")

	enc, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultAlgorithm.ID(), enc[0])

	out.Reset()
	require.NoError(t, run("hunter22\n", "read", "--password-stdin", dst))
	assert.Contains(t, out.String(), "meet at noon\n")

	out.Reset()
	err = run("wrong\n", "read", "--password-stdin", dst)
	require.Error(t, err)
	assert.Equal(t, interaction.MsgReadFailed, err.Error())
	assert.NotContains(t, out.String(), "meet at noon")
}

func TestCLI_DuplicatePaths(t *testing.T) {
	out := resetGlobalState(t)
	dir, paths := writeFiles(t, map[string]string{"a.txt": "alpha"})
	sep := string(filepath.Separator)
	same := dir + sep + "." + sep + "a.txt"

	require.NoError(t, run("hunter22\n", "encrypt", "--password-stdin", "--jobs", "2", paths[0], same))
	assert.Equal(t, 1, strings.Count(out.String(), "✓ "))

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Len(t, data, len("alpha")+core.Overhead, "encrypted exactly once")

	out.Reset()
	require.NoError(t, run("hunter22\n", "decrypt", "--password-stdin", same, paths[0]))
	data, err = os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))
}

func TestUniquePaths(t *testing.T) {
	Logger = logger.Nop{}
	sep := string(filepath.Separator)
	got := uniquePaths([]string{"a.txt", "." + sep + "a.txt", "b.txt", "dir" + sep + ".." + sep + "b.txt", "a.txt"})
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestCLI_InvalidInvocations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "output with several files", args: []string{"encrypt", "--password-stdin", "-o", "out"}},
		{name: "unknown algorithm", args: []string{"encrypt", "--password-stdin", "-a", "rot13"}},
		{name: "no jobs", args: []string{"decrypt", "--password-stdin", "--jobs", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState(t)
			_, paths := writeFiles(t, map[string]string{"a": "a", "b": "b"})

			require.Error(t, run("hunter22\n", append(tt.args, paths...)...))
			for _, path := range paths {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Len(t, data, 1, "nothing may be written")
			}
		})
	}
}

func TestCLI_EmptyPassphrase(t *testing.T) {
	resetGlobalState(t)
	_, paths := writeFiles(t, map[string]string{"a": "a"})

	err := run("\n", "encrypt", "--password-stdin", paths[0])
	require.Error(t, err)
	assert.Equal(t, "no passphrase on stdin", err.Error())
}

func TestCLI_Algorithms(t *testing.T) {
	out := resetGlobalState(t)
	settings.DefaultAlgorithm = cipher.AESGCMSIV

	require.NoError(t, run("", "algorithms"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(cipher.Algorithms))
	assert.True(t, strings.HasPrefix(lines[1], "* 2"), lines[1])
	assert.Contains(t, lines[0], "aes-gcm")
	assert.Contains(t, lines[2], "ChaCha20-Poly1305")
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "pw\n", want: "pw"},
		{in: "pw\r\n", want: "pw"},
		{in: "pw", want: "pw"},
		{in: "two words\nsecond line\n", want: "two words"},
		{in: "", wantErr: true},
		{in: "\n", wantErr: true},
	}

	for _, tt := range tests {
		got, err := readLine(strings.NewReader(tt.in))
		if tt.wantErr {
			assert.Error(t, err, "%q", tt.in)
			continue
		}
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, string(got))
	}
}

func TestReport(t *testing.T) {
	color.NoColor = true
	outcomes := []outcome{
		{path: "a", res: &interaction.Result{Message: interaction.MsgEncrypted, Out: "a", InSize: 5, OutSize: 50}},
		{path: "b", err: errors.New(interaction.MsgEncryptFailed)},
	}

	lines := strings.Split(strings.TrimSpace(report(outcomes)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "✓ "+interaction.MsgEncrypted+": a (5B -> 50B)", lines[0])
	assert.Equal(t, "✗ b: "+interaction.MsgEncryptFailed, lines[1])

	assert.EqualError(t, failures(outcomes), "1 of 2 files failed")
	assert.NoError(t, failures(outcomes[:1]))
}
