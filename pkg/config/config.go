package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coneno/logger"
	"github.com/joho/godotenv"
	"github.com/okteto/attendees-function/pkg/types"
)

const (
	ENV_GIN_DEBUG_MODE     = "GIN_DEBUG_MODE"
	ENV_LOG_LEVEL          = "LOG_LEVEL"
	ENV_PORT               = "PORT"
	ENV_CORS_ALLOW_ORIGINS = "CORS_ALLOW_ORIGINS"

	ENV_MONGODB_PASSWORD_FILE = "MONGODB_PASSWORD_FILE"
	ENV_MONGODB_HOST          = "MONGODB_HOST"
	ENV_MONGODB_USERNAME      = "MONGODB_USERNAME"
	ENV_DB_NAME               = "DB_NAME"

	ENV_DB_TIMEOUT           = "DB_TIMEOUT"
	ENV_DB_IDLE_CONN_TIMEOUT = "DB_IDLE_CONN_TIMEOUT"
	ENV_DB_MAX_POOL_SIZE     = "DB_MAX_POOL_SIZE"
)

const (
	DefaultPasswordFile = "/var/openfaas/secrets/mongodb-password"
	DefaultMongoHost    = "mongodb:27017"
	DefaultMongoUser    = "root"
	DefaultDBName       = "okteto"
	DefaultPort         = "8080"

	defaultDBTimeout       = 30
	defaultIdleConnTimeout = 45
	defaultMaxPoolSize     = 8
)

// Config is the structure that holds all global configuration data
type Config struct {
	GinDebugMode bool
	Port         string
	AllowOrigins []string
	LogLevel     logger.LogLevel
	DBConfig     types.DBConfig
}

// InitConfig reads the environment (and a .env file when present). It stops
// the process if the database secret can not be read.
func InitConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warning.Printf("could not load .env file: %v", err)
	}

	conf, err := FromEnv()
	if err != nil {
		logger.Error.Fatal(err)
	}
	return conf
}

func FromEnv() (Config, error) {
	conf := Config{}
	conf.GinDebugMode = os.Getenv(ENV_GIN_DEBUG_MODE) == "true"
	conf.Port = getEnvOr(ENV_PORT, DefaultPort)
	conf.AllowOrigins = strings.Split(getEnvOr(ENV_CORS_ALLOW_ORIGINS, "*"), ",")
	conf.LogLevel = getLogLevel()

	dbConf, err := getDBConfig()
	if err != nil {
		return conf, err
	}
	conf.DBConfig = dbConf
	return conf, nil
}

func getLogLevel() logger.LogLevel {
	switch os.Getenv(ENV_LOG_LEVEL) {
	case "debug":
		return logger.LEVEL_DEBUG
	case "info":
		return logger.LEVEL_INFO
	case "error":
		return logger.LEVEL_ERROR
	case "warning":
		return logger.LEVEL_WARNING
	default:
		return logger.LEVEL_INFO
	}
}

func getDBConfig() (types.DBConfig, error) {
	password, err := ReadSecret(getEnvOr(ENV_MONGODB_PASSWORD_FILE, DefaultPasswordFile))
	if err != nil {
		return types.DBConfig{}, err
	}
	URI := fmt.Sprintf(`mongodb://%s:%s@%s`,
		getEnvOr(ENV_MONGODB_USERNAME, DefaultMongoUser),
		password,
		getEnvOr(ENV_MONGODB_HOST, DefaultMongoHost),
	)

	Timeout, err := getIntEnvOr(ENV_DB_TIMEOUT, defaultDBTimeout)
	if err != nil {
		return types.DBConfig{}, err
	}
	IdleConnTimeout, err := getIntEnvOr(ENV_DB_IDLE_CONN_TIMEOUT, defaultIdleConnTimeout)
	if err != nil {
		return types.DBConfig{}, err
	}
	mps, err := getIntEnvOr(ENV_DB_MAX_POOL_SIZE, defaultMaxPoolSize)
	if err != nil {
		return types.DBConfig{}, err
	}

	return types.DBConfig{
		URI:             URI,
		DBName:          getEnvOr(ENV_DB_NAME, DefaultDBName),
		Timeout:         Timeout,
		IdleConnTimeout: IdleConnTimeout,
		MaxPoolSize:     uint64(mps),
	}, nil
}

// ReadSecret returns the content of a mounted secret file. Only the trailing
// newline is removed; the value is used as-is.
func ReadSecret(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("couldn't read DB password: %w", err)
	}
	return strings.TrimRight(string(content), "\r\n"), nil
}

func getEnvOr(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnvOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}
