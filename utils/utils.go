package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

// Rand returns len bytes from the OS CSPRNG.
func Rand(len int) ([]byte, error) {
	buf := make([]byte, len)
	if n, err := rand.Read(buf); err != nil || n != len {
		return nil, fmt.Errorf("failed to read random bytes: %v", err)
	}
	return buf, nil
}

// Zero overwrites sensitive bytes in place.
func Zero(sensi []byte) {
	for i := range sensi {
		sensi[i] = 0
	}
}

// VerifyPassFormat returns an empty string for an acceptable passphrase,
// otherwise a short recommendation for the user. It never rejects on strength.
func VerifyPassFormat(pwd []byte) string {
	if len(pwd) == 0 {
		return "Passphrase cannot be empty."
	}
	return ""
}

var strengthLabels = []string{"very weak", "weak", "fair", "good", "strong"}

// PassStrength scores pwd from 0 to 4 and returns a label for it along with
// the estimated crack time.
func PassStrength(pwd []byte, userInputs ...string) (score int, label, crackTime string) {
	if len(pwd) == 0 {
		return 0, strengthLabels[0], ""
	}
	res := zxcvbn.PasswordStrength(string(pwd), userInputs)
	score = min(max(res.Score, 0), len(strengthLabels)-1)
	return score, strengthLabels[score], strings.TrimSpace(res.CrackTimeDisplay)
}

// PassHint renders a strength hint, e.g. "Strength: weak (crackable in 3 hours)".
func PassHint(pwd []byte, userInputs ...string) string {
	if len(pwd) == 0 {
		return ""
	}
	_, label, crackTime := PassStrength(pwd, userInputs...)
	hint := fmt.Sprintf("Strength: %s", label)
	if crackTime != "" {
		hint += fmt.Sprintf(" (crackable in %s)", crackTime)
	}
	return hint
}
