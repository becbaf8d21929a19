package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
host: admin.example.com
basePath: /api
docsPath: /api/docs
database:
  driver: postgres
  source: {{ .ADMIN_TEST_DSN }}
pulsar:
  url: pulsar://localhost:6650
  topicProducer: admin-events
  topicConsumer: sync-requests
  subscription: admin-services
aws:
  region: eu-west-2
accounts:
  serviceAccountEmail: service@example.com
  helpdeskEmail: helpdesk@example.com
onboarding:
  ackDuration: 5s
  plans:
    - id: tiny
      name: Tiny
      storage: 1 GB
      maxUsers: 1
sync:
  steps: 4
  stepInterval: 100ms
  itemDelay: 1s
  successRate: 0.5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ADMIN_TEST_DSN", "postgres://admin:secret@db:5432/admin?sslmode=disable&timezone=UTC")

	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://admin:secret@db:5432/admin?sslmode=disable&timezone=UTC", cfg.Database.Source)
	assert.Equal(t, "sync-requests", cfg.Pulsar.TopicConsumer)
	assert.Equal(t, "helpdesk@example.com", cfg.Accounts.HelpdeskEmail)
	assert.Equal(t, 5*time.Second, cfg.Onboarding.AckDuration)
	require.Len(t, cfg.Onboarding.Plans, 1)
	assert.Equal(t, "tiny", cfg.Onboarding.Plans[0].ID)
	assert.Empty(t, cfg.Onboarding.Dashboards)
	assert.Equal(t, 4, cfg.Sync.Steps)
	assert.Equal(t, 100*time.Millisecond, cfg.Sync.StepInterval)
	require.NotNil(t, cfg.Sync.SuccessRate)
	assert.Equal(t, 0.5, *cfg.Sync.SuccessRate)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Onboarding.AckDuration)
	assert.Nil(t, cfg.Sync.SuccessRate)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "host: [unterminated\n"))
	assert.Error(t, err)
}
