package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host       string           `yaml:"host"`
	BasePath   string           `yaml:"basePath"`
	DocsPath   string           `yaml:"docsPath"`
	Accounts   AccountsConfig   `yaml:"accounts"`
	Database   DatabaseConfig   `yaml:"database"`
	Pulsar     PulsarConfig     `yaml:"pulsar"`
	AWS        AWSConfig        `yaml:"aws"`
	Onboarding OnboardingConfig `yaml:"onboarding"`
	Sync       SyncConfig       `yaml:"sync"`
}

// AccountsConfig defines the sender and reply-to addresses for client emails
type AccountsConfig struct {
	ServiceAccountEmail string `yaml:"serviceAccountEmail"`
	HelpdeskEmail       string `yaml:"helpdeskEmail"`
}

// DatabaseConfig selects the store. Driver is "memory" or "postgres".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
	Seed   bool   `yaml:"seed"`
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

// OnboardingConfig holds the catalogs offered while onboarding a client.
// Empty lists fall back to the built-in catalog.
type OnboardingConfig struct {
	AckDuration time.Duration          `yaml:"ackDuration"`
	Plans       []models.WorkspacePlan `yaml:"plans"`
	Dashboards  []models.Dashboard     `yaml:"dashboards"`
}

type SyncConfig struct {
	Steps        int           `yaml:"steps"`
	StepInterval time.Duration `yaml:"stepInterval"`
	ItemDelay    time.Duration `yaml:"itemDelay"`
	SuccessRate  *float64      `yaml:"successRate"`
	Retention    time.Duration `yaml:"retention"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	if config.Database.Driver == "" {
		config.Database.Driver = DriverMemory
	}
	if config.Onboarding.AckDuration <= 0 {
		config.Onboarding.AckDuration = 2 * time.Second
	}

	return &config, nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
