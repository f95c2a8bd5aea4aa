package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptySet(t *testing.T) {
	l := NewFileLedger(filepath.Join(t.TempDir(), "deactivated.txt"))

	done, err := l.Load()

	assert.NoError(t, err)
	assert.Empty(t, done)
}

func TestRecordThenLoadRoundTrip(t *testing.T) {
	l := NewFileLedger(filepath.Join(t.TempDir(), "deactivated.txt"))

	require.NoError(t, l.Record("usr1"))
	require.NoError(t, l.Record("usr2"))

	done, err := l.Load()

	assert.NoError(t, err)
	assert.True(t, done["usr1"])
	assert.True(t, done["usr2"])
	assert.Len(t, done, 2)
}

func TestRecordIsDurableBeforeReturning(t *testing.T) {
	// O conteúdo tem que estar no arquivo assim que Record volta, sem
	// depender de nenhum flush posterior do processo
	path := filepath.Join(t.TempDir(), "deactivated.txt")
	l := NewFileLedger(path)

	require.NoError(t, l.Record("usr1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "usr1\n", string(raw))
}

func TestRecordAppendsWithoutOverwriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deactivated.txt")
	require.NoError(t, os.WriteFile(path, []byte("usr0\n"), 0o644))

	l := NewFileLedger(path)
	require.NoError(t, l.Record("usr1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "usr0\nusr1\n", string(raw))
}

func TestLoadTrimsWhitespaceAndSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deactivated.txt")
	require.NoError(t, os.WriteFile(path, []byte("usr1  \n\n  usr2\n"), 0o644))

	done, err := NewFileLedger(path).Load()

	assert.NoError(t, err)
	assert.True(t, done["usr1"])
	assert.True(t, done["usr2"])
	assert.Len(t, done, 2)
}

func TestNewFileLedgerDefaultsPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileLedger("").Path)
}
