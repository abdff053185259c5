package huffmantesting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/realh/logi/huffman"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log    logger.Logger
	T      *testing.T
	TmpDir string
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel defaults to NOOP so test output stays quiet.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		Log:    logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		T:      t,
		TmpDir: t.TempDir(),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Path returns relativePath under the context's temporary directory.
func (c *TestContext) Path(relativePath string) string {
	return filepath.Join(c.TmpDir, relativePath)
}

// WriteTable writes the code table lines to relativePath, creating parent
// directories, and returns the absolute path.
func (c *TestContext) WriteTable(relativePath string, lines ...string) string {
	filePath := c.Path(relativePath)
	require.NoError(c.T, os.MkdirAll(filepath.Dir(filePath), 0755))
	require.NoError(c.T, os.WriteFile(filePath, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return filePath
}

// LoadTables parses the code table lines.
func (c *TestContext) LoadTables(lines ...string) *huffman.Tables {
	ts, err := huffman.Load(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(c.T, err)
	return ts
}
