package bestiary

import (
	"os"
	"testing"

	"rivermarsh-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
