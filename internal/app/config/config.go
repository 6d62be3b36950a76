package config

import (
	"necessitous-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Warsaw"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			SubmitRateLimitPerMinute:   utils.GetEnvInt("APP_SUBMIT_RATE_LIMIT_PER_MINUTE", 5),
			SubmitBlockTimeInMinutes:   utils.GetEnvInt("APP_SUBMIT_BLOCK_TIME_IN_MINUTES", 5),
		},
		Backend: AppBackend{
			ApiUrl:               utils.GetEnvString("BACKEND_API_URL", "http://localhost:3000/api/"),
			ParseResponse:        utils.GetEnvBool("BACKEND_PARSE_RESPONSE", true),
			HTTPTimeoutInSeconds: utils.GetEnvInt("BACKEND_HTTP_TIMEOUT_IN_SECONDS", 30),
		},
		Transport: AppTransport{
			Driver: utils.GetEnvString("TRANSPORT_DRIVER", "http"),
			Queue:  utils.GetEnvString("TRANSPORT_QUEUE", "supply_requests"),
		},
		Draft: AppDraft{
			TTLInMinutes: utils.GetEnvInt("DRAFT_TTL_IN_MINUTES", 1440),
		},
		Archive: AppArchive{
			Enabled:    utils.GetEnvBool("ARCHIVE_ENABLED", false),
			BucketName: utils.GetEnvString("ARCHIVE_BUCKET", "supply-requests"),
		},
	}
}
