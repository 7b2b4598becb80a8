package config

import (
	"medrecord-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:                    utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                    utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:                  utils.GetEnvString("MONGODB_DB_NAME", "medrecord"),
			Username:                utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:                utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
		},
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
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medrecord-uploads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			StoreTimeoutInSeconds:      utils.GetEnvInt("APP_STORE_TIMEOUT_IN_SECONDS", 10),
			ModelTimeoutInSeconds:      utils.GetEnvInt("APP_MODEL_TIMEOUT_IN_SECONDS", 30),
		},
		Model: Model{
			BaseUrl:     utils.GetEnvString("MODEL_BASE_URL", "http://localhost:1234/v1"),
			APIKey:      utils.GetEnvString("MODEL_API_KEY", ""),
			ChatModel:   utils.GetEnvString("MODEL_CHAT_NAME", "hermes-3-llama-3.2-3b"),
			VisionModel: utils.GetEnvString("MODEL_VISION_NAME", "gemini-1.5-flash"),
		},
		Session: Session{
			Backend:      utils.GetEnvString("SESSION_BACKEND", "memory"),
			Capacity:     utils.GetEnvInt("SESSION_CAPACITY", 1000),
			TTLInMinutes: utils.GetEnvInt("SESSION_TTL_IN_MINUTES", 60),
		},
		Events: Events{
			Queue:   utils.GetEnvString("EVENTS_QUEUE", "medrecord-events"),
			Enabled: utils.GetEnvBool("EVENTS_ENABLED", true),
		},
	}
}
