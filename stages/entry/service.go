package entry

import (
	"fmt"
	"strings"

	"fileencryptor/cipher"
	"fileencryptor/consts"
	"fileencryptor/core"
	"fileencryptor/logger"
	"fileencryptor/stages/auxiliary"

	"github.com/common-nighthawk/go-figure"
)

type Service struct {
	logger   logger.Logger
	settings *auxiliary.Settings
}

func NewService(logger logger.Logger, settings *auxiliary.Settings) *Service {
	return &Service{
		logger:   logger,
		settings: settings,
	}
}

// Banner renders the app title in the given figlet font.
func (s *Service) Banner(font string) string {
	return strings.TrimRight(figure.NewFigure(consts.APP_TITLE, font, true).String(), "\n ")
}

func (s *Service) About() *About {
	about := &About{
		Name:       consts.APP_TITLE,
		Version:    consts.APP_VERSION,
		HeaderSize: core.HeaderSize,
		Overhead:   core.Overhead,
		Iterations: cipher.Iterations,
		Algorithms: make([]AlgorithmInfo, 0, len(cipher.Algorithms)),
	}
	for _, a := range cipher.Algorithms {
		about.Algorithms = append(about.Algorithms, AlgorithmInfo{
			ID:    a.ID(),
			Name:  a.String(),
			Label: a.Label(),
		})
	}
	if s.settings != nil {
		about.LogPath = s.settings.LogPath
		about.DefaultAlgorithm = s.settings.DefaultAlgorithm.String()
	}
	return about
}

func (s *Service) Help() string {
	return fmt.Sprintf(helpContent, consts.APP_TITLE)
}

func (s *Service) Quit() {
	s.logger.Log(logger.InfoLevel, "quit from menu")
}

const helpContent string = `%[1]s encrypts single files with a passphrase.

----------------------------------------------------------------------
1. Commands
----------------------------------------------------------------------
  Encrypt : pick a file, pick a method, enter a passphrase twice.
            The file is replaced by its encrypted form.
  Decrypt : pick an encrypted file, enter its passphrase twice.
            The file is replaced by its original content.
  Read    : pick an encrypted .txt file, enter its passphrase twice.
            The text is shown on screen, the file is not changed.

----------------------------------------------------------------------
2. Methods
----------------------------------------------------------------------
  AES-256-GCM        : the default, fast on most hardware.
  AES-256-GCM-SIV    : tolerates nonce reuse.
  ChaCha20-Poly1305  : fast without AES hardware.
The method is stored in the file, decrypting never asks for it.

----------------------------------------------------------------------
3. Passphrases
----------------------------------------------------------------------
There is no recovery. A lost passphrase means a lost file.
A wrong passphrase and a damaged file give the same message.

----------------------------------------------------------------------
4. Keys
----------------------------------------------------------------------
  Arrow Up / Down  : move between items
  Tab / Shift+Tab  : move between fields
  Enter            : confirm
  Alt+B            : go back
  q                : quit from the menu
`
