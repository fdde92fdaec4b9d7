package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Gemini   GeminiConfig
	TaskJar  TaskJarConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CorsOrigins string // comma-separated; empty means localhost defaults
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NATSConfig configuration for NATS JetStream
type NATSConfig struct {
	URL string // nats://localhost:4222
}

// RedisConfig for the analytics/settings cache
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // number of backup files
	MaxAge     int    // days
	Compress   bool   // compress backups
}

// GeminiConfig for the task-generation collaborator
type GeminiConfig struct {
	APIKey string
	Model  string // gemini-1.5-flash
}

// TaskJarConfig holds the progress-accounting defaults applied to new users.
// Per-user overrides live in the settings table.
type TaskJarConfig struct {
	JarTarget     int // XP required to seal a jar
	XPLight       int
	XPStandard    int
	XPChallenging int
	AnalyticsDays int // daily-completion window length
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// no .env file is fine, fall back to environment variables
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	jarTarget, _ := strconv.Atoi(getEnv("TASKJAR_JAR_TARGET", "100"))
	xpLight, _ := strconv.Atoi(getEnv("TASKJAR_XP_LIGHT", "5"))
	xpStandard, _ := strconv.Atoi(getEnv("TASKJAR_XP_STANDARD", "10"))
	xpChallenging, _ := strconv.Atoi(getEnv("TASKJAR_XP_CHALLENGING", "15"))
	analyticsDays, _ := strconv.Atoi(getEnv("TASKJAR_ANALYTICS_DAYS", "30"))

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TaskJar"),
			Port:        getEnv("APP_PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CorsOrigins: getEnv("CORS_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "taskjar"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GOOGLE_GENERATIVE_AI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		TaskJar: TaskJarConfig{
			JarTarget:     jarTarget,
			XPLight:       xpLight,
			XPStandard:    xpStandard,
			XPChallenging: xpChallenging,
			AnalyticsDays: analyticsDays,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
