package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	mu     sync.Mutex
	level  = logrus.WarnLevel
	output io.Writer = os.Stderr
)

// SetLevel sets the level used by loggers created afterwards.
func SetLevel(l logrus.Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// ParseLevel parses a level name and applies it.
func ParseLevel(name string) error {
	l, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	SetLevel(l)
	return nil
}

// SetOutput redirects loggers created afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// New creates a logger tagged with prefix.
func New(prefix string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	log := logrus.New()
	log.Formatter = new(prefixed.TextFormatter)
	log.Level = level
	log.Out = output

	return log.WithFields(logrus.Fields{
		"prefix": prefix,
	})
}
