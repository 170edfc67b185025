package config

// Поддерживаемые бэкенды хранилища
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigServer настройки сервера
type ConfigServer struct {
	Backend                 string `mapstructure:"backend"`
	UseReflection           bool   `mapstructure:"use_reflection"`
	PortGRPC                int    `mapstructure:"port_grpc"`
	PortHTTP                int    `mapstructure:"port_http"`
	HTTPReadTimeout         int    `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int    `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int    `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int    `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int    `mapstructure:"graceful_shutdown_timeout"`
}

// ConfigStorage настройки персистентного хранилища
type ConfigStorage struct {
	DSN string `mapstructure:"dsn"`
}

// ConfigHTTP настройки REST API
type ConfigHTTP struct {
	Prefix             string `mapstructure:"prefix"`
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// ConfigSwagger настройки отдачи OpenAPI документа
type ConfigSwagger struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	Storage *ConfigStorage `mapstructure:"storage"`
	HTTP    *ConfigHTTP    `mapstructure:"http"`
	Swagger *ConfigSwagger `mapstructure:"swagger"`
}

// ApplyDefaults заполняет отсутствующие секции и нулевые значения
func (c *Config) ApplyDefaults() {
	if c.Logger == nil {
		c.Logger = &ConfigLogger{}
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}

	if c.Server == nil {
		c.Server = &ConfigServer{}
	}
	if c.Server.Backend == "" {
		c.Server.Backend = BackendMemory
	}
	if c.Server.PortHTTP == 0 {
		c.Server.PortHTTP = 8080
	}
	if c.Server.PortGRPC == 0 {
		c.Server.PortGRPC = 50051
	}
	if c.Server.HTTPReadTimeout == 0 {
		c.Server.HTTPReadTimeout = 10
	}
	if c.Server.HTTPWriteTimeout == 0 {
		c.Server.HTTPWriteTimeout = 10
	}
	if c.Server.HTTPIdleTimeout == 0 {
		c.Server.HTTPIdleTimeout = 60
	}
	if c.Server.HTTPReadHeaderTimeout == 0 {
		c.Server.HTTPReadHeaderTimeout = 5
	}
	if c.Server.GracefulShutdownTimeout == 0 {
		c.Server.GracefulShutdownTimeout = 10
	}

	if c.Storage == nil {
		c.Storage = &ConfigStorage{}
	}
	if c.Storage.DSN == "" {
		c.Storage.DSN = "notes.db"
	}

	if c.HTTP == nil {
		c.HTTP = &ConfigHTTP{}
	}
	// Префикс по умолчанию зависит от варианта хранилища
	if c.HTTP.Prefix == "" {
		c.HTTP.Prefix = "/notes"
		if c.Server.Backend == BackendSQLite {
			c.HTTP.Prefix = "/api/notes"
		}
	}

	if c.Swagger == nil {
		c.Swagger = &ConfigSwagger{}
	}
}
