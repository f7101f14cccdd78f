package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Rooms    RoomsConfig
}

type ServerConfig struct {
	Port    string
	AppName string `mapstructure:"app_name"`
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	TimeZone    string
	TablePrefix string `mapstructure:"table_prefix"`
}

type RedisConfig struct {
	// Addr empty disables the cross-instance counts bridge.
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// RoomsConfig controls the write strategies of the room/community stores.
type RoomsConfig struct {
	// AtomicOps selects the atomic server-side write path for participant
	// counts and membership changes. When false the legacy read-then-write
	// fallback is used, which can lose updates under concurrent callers.
	AtomicOps bool `mapstructure:"atomic_ops"`

	// SwallowWriteErrors keeps participant join/leave/set returning
	// success to the client even when the durable write fails; the error
	// is logged and the locally computed count is still broadcast.
	SwallowWriteErrors bool `mapstructure:"swallow_write_errors"`
}

func LoadConfig() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.app_name", "vocably")
	viper.SetDefault("rooms.atomic_ops", true)
	viper.SetDefault("rooms.swallow_write_errors", true)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Error reading config file, %s", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
