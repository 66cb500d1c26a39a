package config

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	AWS      AWSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type LogConfig struct {
	Level string
}

var (
	mu  sync.RWMutex
	cfg = defaults()
)

func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 7070},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "gotix", SSLMode: "disable"},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		JWT:      JWTConfig{Secret: "change-me", ExpireMinutes: 1440},
		AWS:      AWSConfig{Region: "ap-southeast-1"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads configuration from the environment (and a .env file if present).
// Keys are dot-paths upper-snaked, e.g. SERVER_PORT, DATABASE_HOST, JWT_SECRET.
func Load() error {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := defaults()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.baseurl", d.Server.BaseURL)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.dbname", d.Database.DBName)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("jwt.secret", d.JWT.Secret)
	v.SetDefault("jwt.expireminutes", d.JWT.ExpireMinutes)
	v.SetDefault("aws.region", d.AWS.Region)
	v.SetDefault("aws.accesskeyid", d.AWS.AccessKeyID)
	v.SetDefault("aws.secretaccesskey", d.AWS.SecretAccessKey)
	v.SetDefault("aws.bucket", d.AWS.Bucket)
	v.SetDefault("log.level", d.Log.Level)

	loaded := &Config{
		Server: ServerConfig{
			Host:    v.GetString("server.host"),
			Port:    v.GetInt("server.port"),
			BaseURL: v.GetString("server.baseurl"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("jwt.secret"),
			ExpireMinutes: v.GetInt("jwt.expireminutes"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("aws.region"),
			AccessKeyID:     v.GetString("aws.accesskeyid"),
			SecretAccessKey: v.GetString("aws.secretaccesskey"),
			Bucket:          v.GetString("aws.bucket"),
		},
		Log: LogConfig{Level: v.GetString("log.level")},
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return nil
}

// Get returns the current configuration. Safe to call before Load; defaults apply.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
