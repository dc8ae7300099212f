package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Instagram InstagramConfig `mapstructure:"instagram"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type LLMConfig struct {
	URL               string `mapstructure:"url"`
	VisionModel       string `mapstructure:"vision_model"`
	ApiKey            string `mapstructure:"api_key"`
	CaptionPromptPath string `mapstructure:"caption_prompt_path"`
}

// InstagramConfig Instagram 接入配置
type InstagramConfig struct {
	GraphURL        string `mapstructure:"graph_url"`
	FetchLimit      int    `mapstructure:"fetch_limit"`
	InstaloaderPath string `mapstructure:"instaloader_path"`
	ScrapeLimit     int    `mapstructure:"scrape_limit"`
	TempDir         string `mapstructure:"temp_dir"`
}
