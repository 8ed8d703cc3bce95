package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand(t *testing.T) {
	a, err := Rand(16)
	require.NoError(t, err)
	b, err := Rand(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	empty, err := Rand(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestZero(t *testing.T) {
	buf := []byte("secret")
	Zero(buf)
	assert.Equal(t, make([]byte, 6), buf)

	Zero(nil)
}

func TestVerifyPassFormat(t *testing.T) {
	assert.NotEmpty(t, VerifyPassFormat(nil))
	assert.NotEmpty(t, VerifyPassFormat([]byte{}))
	assert.Empty(t, VerifyPassFormat([]byte("a")))
	assert.Empty(t, VerifyPassFormat([]byte("correct horse battery staple")))
}

func TestPassStrength(t *testing.T) {
	score, label, crack := PassStrength(nil)
	assert.Equal(t, 0, score)
	assert.Equal(t, "very weak", label)
	assert.Empty(t, crack)

	weak, _, _ := PassStrength([]byte("password"))
	strong, label, crack := PassStrength([]byte("8#qT!vz0-Lw@r2Pk9&Yd"))
	assert.Less(t, weak, strong)
	assert.Equal(t, 4, strong)
	assert.Equal(t, "strong", label)
	assert.NotEmpty(t, crack)

	// user inputs count against the score
	alone, _, _ := PassStrength([]byte("manaswafileencryptor"))
	withInputs, _, _ := PassStrength([]byte("manaswafileencryptor"), "manaswa", "fileencryptor")
	assert.LessOrEqual(t, withInputs, alone)
}

func TestPassHint(t *testing.T) {
	assert.Empty(t, PassHint(nil))
	assert.Contains(t, PassHint([]byte("password")), "Strength: very weak")
}
