package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecorder_MergesOutcomes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Test.json")
	rec := NewFileRecorder(path)

	require.NoError(t, rec.Record("getProducts", true))
	require.NoError(t, rec.Record("addProductExistingCode", false))

	got, err := rec.Outcomes()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"getProducts":            Success,
		"addProductExistingCode": Failed,
	}, got)
}

func TestFileRecorder_OverwritesSameScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Test.json")
	rec := NewFileRecorder(path)

	require.NoError(t, rec.Record("deleteProduct", false))
	require.NoError(t, rec.Record("deleteProduct", true))

	got, err := rec.Outcomes()
	require.NoError(t, err)
	assert.Equal(t, Success, got["deleteProduct"])
	assert.Len(t, got, 1)
}

func TestFileRecorder_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Test.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	err := NewFileRecorder(path).Record("getProducts", true)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PRODUCT_RESULTS_REDIS", "")
	t.Setenv("PRODUCT_RESULTS_FILE", "")
	assert.IsType(t, Nop{}, FromEnv())

	path := filepath.Join(t.TempDir(), "out.json")
	t.Setenv("PRODUCT_RESULTS_FILE", path)
	assert.IsType(t, &FileRecorder{}, FromEnv())

	t.Setenv("PRODUCT_RESULTS_REDIS", "localhost:6379")
	assert.IsType(t, &RedisRecorder{}, FromEnv())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "Success", Outcome(true))
	assert.Equal(t, "Failed", Outcome(false))
	assert.NoError(t, Nop{}.Record("anything", false))
}
