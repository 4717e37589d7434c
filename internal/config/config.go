package config

import "github.com/spf13/viper"

// Бэкенды хранилища
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config - конфигурация приложения
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	DataDir       string `mapstructure:"DATA_DIR"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

// Load читает app.env из path, переменные окружения имеют приоритет.
// Отсутствие файла не ошибка - работают значения по умолчанию.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("STORE_BACKEND", BackendFile)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("POSTGRES_CONN", "")
	viper.SetDefault("MIGRATIONS_DIR", "./migrations")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
