package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Datasets  Datasets  `mapstructure:",squash"`
	Storage   Storage   `mapstructure:",squash"`
	Kaggle    Kaggle    `mapstructure:",squash"`
	BCB       BCB       `mapstructure:",squash"`
	Dbt       Dbt       `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Session   Session   `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Pipeline  Pipeline  `mapstructure:",squash"`
	Sensors   Sensors   `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	ProjectID string `mapstructure:"project_id"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string `mapstructure:"-"`
	Driver          string `mapstructure:"database_driver"`
	Password        string `mapstructure:"database_password"`
	URL             string `mapstructure:"database_url"`
	User            string `mapstructure:"database_user"`
	CredentialsPath string `mapstructure:"warehouse_credentials_path"`
	SSLMode         string `mapstructure:"database_sslmode"`
}

type Datasets struct {
	Raw   string `mapstructure:"dataset_raw"`
	Marts string `mapstructure:"dataset_marts"`
}

type Storage struct {
	BucketName string `mapstructure:"gcs_bucket_name"`
	RawDataDir string `mapstructure:"raw_data_dir"`
}

type Kaggle struct {
	Username string        `mapstructure:"kaggle_username"`
	Key      string        `mapstructure:"kaggle_key"`
	Dataset  string        `mapstructure:"kaggle_dataset"`
	BaseURL  string        `mapstructure:"kaggle_base_url"`
	Timeout  time.Duration `mapstructure:"kaggle_timeout"`
}

type BCB struct {
	BaseURL   string        `mapstructure:"bcb_base_url"`
	StartDate string        `mapstructure:"bcb_start_date"`
	Timeout   time.Duration `mapstructure:"bcb_timeout"`
}

type Dbt struct {
	ProjectDir  string `mapstructure:"dbt_project_dir"`
	ProfilesDir string `mapstructure:"dbt_profiles_dir"`
	Binary      string `mapstructure:"dbt_binary"`
	Target      string `mapstructure:"dbt_target"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Session struct {
	Secret string `mapstructure:"session_secret"`
	Name   string `mapstructure:"session_name"`
	MaxAge int    `mapstructure:"session_max_age"`
	Secure bool   `mapstructure:"session_secure"`
}

type Dashboard struct {
	CacheTTL  time.Duration `mapstructure:"dashboard_cache_ttl"`
	CacheSize int           `mapstructure:"dashboard_cache_size"`
}

type Pipeline struct {
	Enabled            bool   `mapstructure:"pipeline_schedules_enabled"`
	DailyFullCron      string `mapstructure:"daily_full_pipeline_cron"`
	EconomicUpdateCron string `mapstructure:"economic_update_pipeline_cron"`
	QualityCheckCron   string `mapstructure:"quality_check_pipeline_cron"`
	SalesRefreshCron   string `mapstructure:"sales_refresh_pipeline_cron"`
}

type Sensors struct {
	BCBFreshnessEnabled             bool `mapstructure:"bcb_freshness_sensor_enabled"`
	BCBFreshnessIntervalSeconds     int  `mapstructure:"bcb_freshness_sensor_interval"`
	DashboardRefreshEnabled         bool `mapstructure:"dashboard_refresh_sensor_enabled"`
	DashboardRefreshIntervalSeconds int  `mapstructure:"dashboard_refresh_sensor_interval"`
}

// Validate verifica as credenciais necessárias para baixar o dataset
func (k Kaggle) Validate() error {
	missing := make([]string, 0)
	if k.Username == "" {
		missing = append(missing, "KAGGLE_USERNAME")
	}
	if k.Key == "" {
		missing = append(missing, "KAGGLE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// Validate lista todas as variáveis obrigatórias ausentes
func (c *Config) Validate() error {
	missing := make([]string, 0)
	if c.App.ProjectID == "" {
		missing = append(missing, "PROJECT_ID")
	}
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.Database.User == "" {
		missing = append(missing, "DATABASE_USER")
	}
	if c.Database.Password == "" && c.Database.CredentialsPath == "" {
		missing = append(missing, "DATABASE_PASSWORD ou WAREHOUSE_CREDENTIALS_PATH")
	}

	if len(missing) > 0 {
		return fmt.Errorf("variáveis de ambiente obrigatórias ausentes: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SourceURI monta a URI de origem registrada nos metadados de carga
func (c *Config) SourceURI(fileName string) string {
	return fmt.Sprintf("gs://%s/%s", c.Storage.BucketName, fileName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PROJECT_ID", "")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_USER", "")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("WAREHOUSE_CREDENTIALS_PATH", "")
	v.SetDefault("DATABASE_SSLMODE", "disable")

	v.SetDefault("DATASET_RAW", "brazilian_sales")
	v.SetDefault("DATASET_MARTS", "")

	v.SetDefault("GCS_BUCKET_NAME", "")
	v.SetDefault("RAW_DATA_DIR", "data/raw")

	v.SetDefault("KAGGLE_USERNAME", "")
	v.SetDefault("KAGGLE_KEY", "")
	v.SetDefault("KAGGLE_DATASET", domain.DefaultKaggleData)
	v.SetDefault("KAGGLE_BASE_URL", "https://www.kaggle.com/api/v1")
	v.SetDefault("KAGGLE_TIMEOUT", 10*time.Minute)

	v.SetDefault("BCB_BASE_URL", "https://api.bcb.gov.br/dados/serie/bcdata.sgs.{series_id}/dados")
	v.SetDefault("BCB_START_DATE", "01/01/2016")
	v.SetDefault("BCB_TIMEOUT", 30*time.Second)

	v.SetDefault("DBT_PROJECT_DIR", "dbt")
	v.SetDefault("DBT_PROFILES_DIR", "")
	v.SetDefault("DBT_BINARY", "dbt")
	v.SetDefault("DBT_TARGET", "")

	v.SetDefault("AUTH_SECRET", "your_secret_key")
	v.SetDefault("AUTH_TOKEN_TTL", 12*time.Hour)

	v.SetDefault("SESSION_SECRET", "your_session_secret")
	v.SetDefault("SESSION_NAME", "dashboard")
	v.SetDefault("SESSION_MAX_AGE", 86400)
	v.SetDefault("SESSION_SECURE", false)

	v.SetDefault("DASHBOARD_CACHE_TTL", time.Hour)
	v.SetDefault("DASHBOARD_CACHE_SIZE", 16)

	// Agendamentos dos jobs
	v.SetDefault("PIPELINE_SCHEDULES_ENABLED", false)
	v.SetDefault("DAILY_FULL_PIPELINE_CRON", "0 6 * * *")         // Todos os dias às 6h
	v.SetDefault("ECONOMIC_UPDATE_PIPELINE_CRON", "0 14 * * *")   // Todos os dias às 14h
	v.SetDefault("QUALITY_CHECK_PIPELINE_CRON", "0 8-18 * * 1-5") // De hora em hora no horário comercial
	v.SetDefault("SALES_REFRESH_PIPELINE_CRON", "0 3 * * 0")      // Domingo às 3h

	// Sensores
	v.SetDefault("BCB_FRESHNESS_SENSOR_ENABLED", false)
	v.SetDefault("BCB_FRESHNESS_SENSOR_INTERVAL", 3600)
	v.SetDefault("DASHBOARD_REFRESH_SENSOR_ENABLED", false)
	v.SetDefault("DASHBOARD_REFRESH_SENSOR_INTERVAL", 300)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.resolveCredentials(); err != nil {
		return nil, err
	}

	if config.Datasets.Marts == "" {
		config.Datasets.Marts = config.Datasets.Raw + "_marts"
	}
	if config.Storage.BucketName == "" && config.App.ProjectID != "" {
		config.Storage.BucketName = config.App.ProjectID + "-raw-data"
	}

	config.Database.DSN = buildDSN(config.Database, config.Datasets.Raw)

	return config, nil
}

// resolveCredentials lê a senha do warehouse do arquivo de credenciais quando a
// variável DATABASE_PASSWORD não foi informada
func (c *Config) resolveCredentials() error {
	if c.Database.Password != "" || c.Database.CredentialsPath == "" {
		return nil
	}

	content, err := os.ReadFile(c.Database.CredentialsPath)
	if err != nil {
		return fmt.Errorf("erro ao ler WAREHOUSE_CREDENTIALS_PATH: %w", err)
	}

	c.Database.Password = strings.TrimSpace(string(content))
	return nil
}

// buildDSN monta a URL de conexão. O search_path aponta para o dataset raw, onde
// ficam as tabelas de controle do pipeline.
func buildDSN(db Database, searchPath string) string {
	if db.URL == "" {
		return ""
	}

	dsn := fmt.Sprintf(
		"%s://%s@%s",
		db.Driver,
		url.UserPassword(db.User, db.Password).String(),
		db.URL,
	)

	params := make([]string, 0, 2)
	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		params = append(params, "sslmode="+url.QueryEscape(db.SSLMode))
	}
	if searchPath != "" && !strings.Contains(db.URL, "search_path=") {
		params = append(params, "search_path="+url.QueryEscape(searchPath))
	}
	if len(params) == 0 {
		return dsn
	}

	separator := "?"
	if strings.Contains(db.URL, "?") {
		separator = "&"
	}
	return dsn + separator + strings.Join(params, "&")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
