package rotate

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kurtisc/bit-rotate/config"
	"github.com/kurtisc/bit-rotate/rotation"
	"github.com/kurtisc/bit-rotate/shared"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Verify = true
	return cfg
}

func TestRun_RoundTrip(t *testing.T) {
	req := require.New(t)
	logger := zaptest.NewLogger(t)
	rng := rand.New(rand.NewSource(11))
	dir := t.TempDir()

	data := make([]byte, 100000)
	rng.Read(data)

	in := filepath.Join(dir, "in.bin")
	rotated := filepath.Join(dir, "rotated.bin")
	restored := filepath.Join(dir, "restored.bin")
	req.NoError(os.WriteFile(in, data, 0o600))

	req.NoError(run(logger, testConfig(), rotation.Left, in, rotated))

	got, err := os.ReadFile(rotated)
	req.NoError(err)
	req.Equal(rotation.RotateBytes(data, rotation.Left), got)

	req.NoError(run(logger, testConfig(), rotation.Right, rotated, restored))

	got, err = os.ReadFile(restored)
	req.NoError(err)
	req.Equal(data, got)
}

func TestRun_EmptyInput(t *testing.T) {
	req := require.New(t)
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.bin")
	req.NoError(os.WriteFile(in, nil, 0o600))

	req.NoError(run(logger, testConfig(), rotation.Right, in, out))

	data, err := os.ReadFile(out)
	req.NoError(err)
	req.Empty(data)
}

func TestRun_SamePath(t *testing.T) {
	req := require.New(t)
	logger := zaptest.NewLogger(t)

	name := filepath.Join(t.TempDir(), "in.bin")
	req.NoError(os.WriteFile(name, []byte{1}, 0o600))

	err := run(logger, testConfig(), rotation.Left, name, name)
	req.ErrorIs(err, shared.ErrSamePath)

	// Also when spelled differently.
	err = run(logger, testConfig(), rotation.Left, name, filepath.Join(filepath.Dir(name), ".", "in.bin"))
	req.ErrorIs(err, shared.ErrSamePath)
}

func TestRun_MissingInput(t *testing.T) {
	req := require.New(t)
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	err := run(logger, testConfig(), rotation.Left, filepath.Join(dir, "nope.bin"), filepath.Join(dir, "out.bin"))
	req.Error(err)
}

func TestRun_UnwritableOutput(t *testing.T) {
	req := require.New(t)
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bin")
	req.NoError(os.WriteFile(in, []byte{1, 2, 3}, 0o600))

	err := run(logger, testConfig(), rotation.Left, in, filepath.Join(dir, "missing", "out.bin"))
	req.Error(err)
}
