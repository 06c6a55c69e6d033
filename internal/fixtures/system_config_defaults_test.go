package fixtures

import (
	"testing"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/stretchr/testify/assert"
)

func TestGetDefaultSystemConfigs_ValuesMatchTheirKind(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range GetDefaultSystemConfigs() {
		assert.False(t, seen[entry.Key], "duplicate default key %s", entry.Key)
		seen[entry.Key] = true

		req := sysconfig.UpdateConfigRequest{Key: entry.Key, Value: entry.Value, Description: entry.Description}
		assert.NoError(t, req.Validate(), "default for %s", entry.Key)
	}

	assert.True(t, seen[sysconfig.KeyLateThreshold])
	assert.True(t, seen[sysconfig.KeyEarlyDepartureThreshold])
}
