package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, development := range []bool{true, false} {
		logger, err := New(development)
		require.NoError(t, err, "development=%v", development)
		assert.NotNil(t, logger)
		logger.Info("logger smoke test")
	}
}
