package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"alfredoptarigan/ats-screener/internal/services"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Worker   WorkerConfig
	Session  SessionConfig
	Pipeline PipelineConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string        `env:"PORT" env-default:"3000"`
	Env          string        `env:"ENV" env-default:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName   string `env:"DB_NAME" env-default:"ats_screener"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`
}

type UploadConfig struct {
	MaxFileSize int64 `env:"MAX_FILE_SIZE" env-default:"10485760"`
}

type WorkerConfig struct {
	Concurrency int `env:"WORKER_CONCURRENCY" env-default:"4"`
	QueueSize   int `env:"WORKER_QUEUE_SIZE" env-default:"100"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" env-default:"ats_session"`
	Expiration time.Duration `env:"SESSION_EXPIRATION" env-default:"24h"`
	Secure     bool          `env:"SESSION_SECURE" env-default:"false"`
}

// PipelineConfig holds the raw scoring switches. Use Config.ScoringPipeline to get
// the validated services.PipelineConfig.
type PipelineConfig struct {
	IncludeJobMatch           bool     `env:"PIPELINE_INCLUDE_JOB_MATCH" env-default:"true"`
	IncludeRoleClassification bool     `env:"PIPELINE_INCLUDE_ROLE_CLASSIFICATION" env-default:"true"`
	SuggestionCap             int      `env:"PIPELINE_SUGGESTION_CAP" env-default:"3"`
	EmptyReferencePolicy      string   `env:"PIPELINE_EMPTY_REFERENCE_POLICY" env-default:"zero"`
	Keywords                  []string `env:"PIPELINE_KEYWORDS" env-separator:","`
}

type LogConfig struct {
	JSON  bool `env:"LOG_JSON" env-default:"false"`
	Debug bool `env:"LOG_DEBUG" env-default:"false"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// ScoringPipeline builds the immutable scoring configuration and checks its
// invariants. A non-nil error must abort startup.
func (c *Config) ScoringPipeline() (services.PipelineConfig, error) {
	pc := services.DefaultPipelineConfig()
	pc.IncludeJobMatch = c.Pipeline.IncludeJobMatch
	pc.IncludeRoleClassification = c.Pipeline.IncludeRoleClassification
	pc.SuggestionCap = c.Pipeline.SuggestionCap

	policy, err := services.ParseEmptyReferencePolicy(c.Pipeline.EmptyReferencePolicy)
	if err != nil {
		return services.PipelineConfig{}, err
	}
	pc.EmptyReference = policy

	if len(c.Pipeline.Keywords) > 0 {
		keywords, err := services.NewKeywordSet(c.Pipeline.Keywords...)
		if err != nil {
			return services.PipelineConfig{}, err
		}
		pc.Keywords = keywords
	}

	if err := pc.Validate(); err != nil {
		return services.PipelineConfig{}, err
	}

	return pc, nil
}
