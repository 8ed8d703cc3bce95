package auxiliary

import (
	"os"
	"path/filepath"
	"testing"

	"fileencryptor/cipher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsKeys = []string{
	"FILEENCRYPTOR_LOG_PATH",
	"FILEENCRYPTOR_LOG_MAX_SIZE_MB",
	"FILEENCRYPTOR_DEFAULT_ALGORITHM",
	"FILEENCRYPTOR_SHOW_HIDDEN",
	"FILEENCRYPTOR_START_DIR",
}

// clearEnv unsets every settings key for the duration of the test; t.Setenv
// restores the previous values afterwards.
func clearEnv(t *testing.T) string {
	t.Helper()
	for _, key := range settingsKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)
	return home
}

func TestSettings(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, home string, s *Settings)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, home string, s *Settings) {
				assert.Equal(t, filepath.Join(home, ".fileencryptor.logs.json"), s.LogPath)
				assert.Equal(t, int64(15*1024*1024), s.LogMaxSize)
				assert.Equal(t, cipher.AESGCM, s.DefaultAlgorithm)
				assert.False(t, s.ShowHidden)
				assert.Equal(t, home, s.StartDir)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"FILEENCRYPTOR_LOG_PATH":          "/tmp/fe.json",
				"FILEENCRYPTOR_LOG_MAX_SIZE_MB":   "2",
				"FILEENCRYPTOR_DEFAULT_ALGORITHM": "ChaCha20-Poly1305",
				"FILEENCRYPTOR_SHOW_HIDDEN":       "true",
			},
			validate: func(t *testing.T, home string, s *Settings) {
				assert.Equal(t, "/tmp/fe.json", s.LogPath)
				assert.Equal(t, int64(2*1024*1024), s.LogMaxSize)
				assert.Equal(t, cipher.ChaCha20Poly1305, s.DefaultAlgorithm)
				assert.True(t, s.ShowHidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			s, err := NewSettings()
			require.NoError(t, err)
			tt.validate(t, home, s)
		})
	}
}

func TestSettings_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown algorithm": {"FILEENCRYPTOR_DEFAULT_ALGORITHM": "des"},
		"zero log size":     {"FILEENCRYPTOR_LOG_MAX_SIZE_MB": "0"},
		"missing start dir": {"FILEENCRYPTOR_START_DIR": "/definitely/not/here"},
	}

	for name, envVars := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range envVars {
				t.Setenv(k, v)
			}

			_, err := NewSettings()
			assert.Error(t, err)
		})
	}
}

func TestSettings_DotEnv(t *testing.T) {
	home := clearEnv(t)
	nested := filepath.Join(home, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".env"),
		[]byte("FILEENCRYPTOR_DEFAULT_ALGORITHM=aes-gcm-siv\nFILEENCRYPTOR_START_DIR="+nested+"\n"),
		0644,
	))
	t.Chdir(nested)

	s, err := NewSettings()
	require.NoError(t, err)
	assert.Equal(t, cipher.AESGCMSIV, s.DefaultAlgorithm)
	assert.Equal(t, nested, s.StartDir)
}
