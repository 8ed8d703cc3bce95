package auxiliary

import (
	"fmt"
	"os"
	"path/filepath"

	"fileencryptor/cipher"
	"fileencryptor/consts"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Settings are read once at startup, from the environment and an optional
// .env file. Every key carries consts.ENV_PREFIX.
type Settings struct {
	// LogPath is the JSON log file.
	LogPath string
	// LogMaxSize is in bytes.
	LogMaxSize int64
	LogMaxTime int64
	// DefaultAlgorithm is preselected in the TUI and used by the CLI when -a is not given.
	DefaultAlgorithm cipher.Algorithm
	ShowHidden       bool
	// StartDir is the root of the file picker tree.
	StartDir string
}

func NewSettings() (*Settings, error) {
	settings := new(Settings)
	if err := settings.initSettings(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) initSettings() error {
	loadDotEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home dir: %w", err)
	}

	s.LogPath = env.GetString(consts.ENV_PREFIX+"LOG_PATH", filepath.Join(home, consts.LOGS_FILE_NAME))
	s.LogMaxSize = int64(env.GetInt(consts.ENV_PREFIX+"LOG_MAX_SIZE_MB", consts.LOGS_MAX_FILE_SIZE_MB)) * 1024 * 1024
	s.LogMaxTime = consts.LOGS_MAX_TIME
	s.ShowHidden = env.GetBool(consts.ENV_PREFIX+"SHOW_HIDDEN", false)
	s.StartDir = env.GetString(consts.ENV_PREFIX+"START_DIR", home)

	alg := env.GetString(consts.ENV_PREFIX+"DEFAULT_ALGORITHM", cipher.AESGCM.String())
	if s.DefaultAlgorithm, err = cipher.ParseAlgorithm(alg); err != nil {
		return fmt.Errorf("invalid %sDEFAULT_ALGORITHM: %w", consts.ENV_PREFIX, err)
	}

	if s.LogMaxSize <= 0 {
		return fmt.Errorf("invalid %sLOG_MAX_SIZE_MB: must be positive", consts.ENV_PREFIX)
	}

	info, err := os.Stat(s.StartDir)
	if err != nil {
		return fmt.Errorf("invalid %sSTART_DIR: %w", consts.ENV_PREFIX, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid %sSTART_DIR: %s is not a directory", consts.ENV_PREFIX, s.StartDir)
	}

	return nil
}

// loadDotEnv loads the first .env found walking up from the working
// directory. Variables already set in the environment win.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
