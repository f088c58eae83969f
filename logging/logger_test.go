package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/viam-labs/footstepplanner/logging"
)

func TestConsoleAppenderWritesTabSeparatedLine(t *testing.T) {
	var buf bytes.Buffer
	appender := logging.NewWriterAppender(&buf)
	logger := logging.NewLogger(-1, appender)

	logger.Errorw("solve failed", "reason", "no best parameter")
	test.That(t, strings.Contains(buf.String(), "solve failed"), test.ShouldBeTrue)
	test.That(t, strings.Contains(buf.String(), "\t"), test.ShouldBeTrue)
}

func TestNewDevelopmentLoggerDoesNotPanic(t *testing.T) {
	logger := logging.NewDevelopmentLogger()
	logger.Infow("planner starting")
}
