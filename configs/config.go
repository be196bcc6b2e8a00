package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      string
	NotifierPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost string
	RedisPort string

	KafkaBrokers string
	KafkaTopic   string
	KafkaGroupID string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func LoadConfig() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("NOTIFIER_PORT", ":8086")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASS", "postgres")
	viper.SetDefault("DB_NAME", "photomarket")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_TOPIC", "moderation.notifications")
	viper.SetDefault("KAFKA_GROUP_ID", "notifier")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("ADMIN_EMAIL", "admin@photomarket.local")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("ADMIN_NAME", "Admin")

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // config file is optional, env wins either way

	return &Config{
		AppPort:       viper.GetString("APP_PORT"),
		NotifierPort:  viper.GetString("NOTIFIER_PORT"),
		DBHost:        viper.GetString("DB_HOST"),
		DBPort:        viper.GetString("DB_PORT"),
		DBUser:        viper.GetString("DB_USER"),
		DBPass:        viper.GetString("DB_PASS"),
		DBName:        viper.GetString("DB_NAME"),
		RedisHost:     viper.GetString("REDIS_HOST"),
		RedisPort:     viper.GetString("REDIS_PORT"),
		KafkaBrokers:  viper.GetString("KAFKA_BROKERS"),
		KafkaTopic:    viper.GetString("KAFKA_TOPIC"),
		KafkaGroupID:  viper.GetString("KAFKA_GROUP_ID"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		AdminEmail:    viper.GetString("ADMIN_EMAIL"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		AdminName:     viper.GetString("ADMIN_NAME"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
