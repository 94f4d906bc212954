package logging

import (
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = os.Stderr
	logger.Formatter = &log.TextFormatter{
		DisableTimestamp: true,
	}
	logger.SetLevel(log.InfoLevel)
}

// SetVerbose switches debug output on or off
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.InfoLevel)
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// GetLogger returns an entry tagged with the calling function
func GetLogger() *log.Entry {
	pc, _, _, _ := runtime.Caller(1)

	entry := logger.WithFields(log.Fields{
		"function": runtime.FuncForPC(pc).Name(),
	})
	return entry
}
