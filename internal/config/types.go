package config

// Config is the top-level blogsite configuration, corresponding to .blogsite.yml.
type Config struct {
	SiteName        string `yaml:"site_name" koanf:"site_name"`
	BaseURL         string `yaml:"base_url" koanf:"base_url"`
	CatalogFile     string `yaml:"catalog_file" koanf:"catalog_file"`
	ContentDir      string `yaml:"content_dir" koanf:"content_dir"`
	PostsGlob       string `yaml:"posts_glob" koanf:"posts_glob"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	OutputDir       string `yaml:"output_dir" koanf:"output_dir"`
	Port            int    `yaml:"port" koanf:"port"`
	LatestCount     int    `yaml:"latest_count" koanf:"latest_count"`
	PopularCount    int    `yaml:"popular_count" koanf:"popular_count"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// KVBackend selects where view counts and consent live.
	KVBackend   string `yaml:"kv_backend" koanf:"kv_backend"`
	RedisAddr   string `yaml:"redis_addr" koanf:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix" koanf:"redis_prefix"`
	PostgresDSN string `yaml:"postgres_dsn,omitempty" koanf:"postgres_dsn"`
}

// Key-value backends.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// DefaultConfig returns a Config with sensible defaults. An empty
// CatalogFile means the built-in seed list.
func DefaultConfig() *Config {
	return &Config{
		SiteName:     "AWPL Blog",
		BaseURL:      "http://localhost:8080",
		ContentDir:   ".",
		PostsGlob:    "posts/**/*.md",
		DataDir:      "data",
		OutputDir:    "public",
		Port:         8080,
		LatestCount:  3,
		PopularCount: 3,
		KVBackend:    BackendSQLite,
		RedisAddr:    "localhost:6379",
		RedisPrefix:  "blogsite:",
	}
}
