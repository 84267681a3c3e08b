package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/joho/godotenv"
)

var (
	awsOnce   sync.Once
	awsConfig *AWSConfig
)

// AWSConfig holds shared settings for every AWS service client.
type AWSConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// GetAWSConfig loads AWS settings from .env at the repo root, falling back
// to the process environment. Empty AccessKey means the SDK's default
// credential chain is used.
func GetAWSConfig() *AWSConfig {
	awsOnce.Do(func() {
		loadDotEnv()

		awsConfig = &AWSConfig{
			Region:    os.Getenv("AWS_REGION"),
			Endpoint:  os.Getenv("AWS_ENDPOINT"),
			AccessKey: os.Getenv("AWS_ACCESS_KEY"),
			SecretKey: os.Getenv("AWS_SECRET_KEY"),
		}
	})
	return awsConfig
}

var dotEnvOnce sync.Once

func loadDotEnv() {
	dotEnvOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		configDir := filepath.Dir(filename)

		rootDir := filepath.Dir(configDir)
		envPath := filepath.Join(rootDir, ".env")

		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Warning: .env file not found at %s, falling back to environment variables", envPath)
		}
	})
}
