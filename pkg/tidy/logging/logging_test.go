package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHonoursLevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(logrus.WarnLevel)
	})

	require.NoError(t, ParseLevel("debug"))
	log := New("test")
	log.Debug("loaded 3 records")

	assert.Contains(t, buf.String(), "loaded 3 records")
	assert.Contains(t, buf.String(), "level=debug")

	buf.Reset()
	SetLevel(logrus.WarnLevel)
	New("test").Info("hidden")
	assert.Empty(t, buf.String())
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	assert.Error(t, ParseLevel("loud"))
}
