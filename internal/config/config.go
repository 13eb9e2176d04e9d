package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	BackendONNX  = "onnx"
	BackendVader = "vader"
)

type Config struct {
	AppEnv            string
	Port              string
	ModelDir          string
	ClassifierBackend string
	BatchWorkers      int
	BatchMaxSize      int
	KafkaEnabled      bool
	KafkaBroker       string
	KafkaResultsTopic string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "dev"),
		Port:              getEnv("PORT", "8000"),
		ModelDir:          getEnv("MODEL_DIR", "./models"),
		ClassifierBackend: getEnv("CLASSIFIER_BACKEND", BackendONNX),
		BatchWorkers:      getEnvInt("BATCH_WORKERS", 4),
		BatchMaxSize:      getEnvInt("BATCH_MAX_SIZE", 100),
		KafkaEnabled:      getEnv("KAFKA_ENABLED", "false") == "true",
		KafkaBroker:       getEnv("KAFKA_BROKER", "localhost:29092"),
		KafkaResultsTopic: getEnv("KAFKA_RESULTS_TOPIC", "review-sentiment-results"),
	}

	if cfg.ClassifierBackend != BackendONNX && cfg.ClassifierBackend != BackendVader {
		return nil, fmt.Errorf("CLASSIFIER_BACKEND must be %q or %q, got %q",
			BackendONNX, BackendVader, cfg.ClassifierBackend)
	}
	if cfg.BatchWorkers < 1 {
		return nil, fmt.Errorf("BATCH_WORKERS must be at least 1, got %d", cfg.BatchWorkers)
	}
	if cfg.BatchMaxSize < 1 {
		return nil, fmt.Errorf("BATCH_MAX_SIZE must be at least 1, got %d", cfg.BatchMaxSize)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
