package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage   `yaml:"storage"`
	Auth       Auth      `yaml:"auth"`
	Catalog    Catalog   `yaml:"catalog"`
	Assistant  Assistant `yaml:"assistant"`
	Mail       Mail      `yaml:"mail"`
	Rollbar    Rollbar   `yaml:"rollbar"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage selects the document store backend: memory, postgres or sqlite.
type Storage struct {
	Driver     string   `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Database   Database `yaml:"database"`
	SQLitePath string   `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"campushub.db"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"campushub"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	TokenSecret string `yaml:"token_secret" env:"AUTH_TOKEN_SECRET" env-required:"true"`
	Issuer      string `yaml:"issuer" env:"AUTH_ISSUER"`
	LoginPath   string `yaml:"login_path" env-default:"/login"`
}

type Catalog struct {
	SeedOnStart bool `yaml:"seed_on_start" env-default:"true"`
	// EnforceCapacity rejects registrations once the attendee count reaches the event capacity.
	// Off by default: capacity is informational.
	EnforceCapacity bool `yaml:"enforce_capacity" env-default:"false"`
}

type Assistant struct {
	Endpoint       string        `yaml:"endpoint" env:"ASSISTANT_ENDPOINT"`
	APIKey         string        `yaml:"api_key" env:"ASSISTANT_API_KEY"`
	Model          string        `yaml:"model" env-default:"default"`
	Persona        string        `yaml:"persona"`
	MaxAttempts    int           `yaml:"max_attempts" env-default:"3"`
	BackoffStep    time.Duration `yaml:"backoff_step" env-default:"1s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"30s"`
}

type Mail struct {
	SendgridAPIKey  string   `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	FromName        string   `yaml:"from_name" env-default:"CampusHub"`
	FromAddress     string   `yaml:"from_address" env-default:"noreply@localhost"`
	IssueRecipients []string `yaml:"issue_recipients" env:"ISSUE_RECIPIENTS" env-separator:","`
}

type Rollbar struct {
	Token       string `yaml:"token" env:"ROLLBAR_TOKEN"`
	CodeVersion string `yaml:"code_version" env:"CODE_VERSION"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// an optional .env next to the config keeps secrets out of yaml
	dotEnvPath := filepath.Join(filepath.Dir(configPath), ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("cannot load %s: %s", dotEnvPath, err)
		}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
