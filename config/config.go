package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Observ    ObservabilityConfig
	Generator GeneratorConfig
	Business  BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers         []string
	TopicEngagement string
	ConsumerGroup   string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	PrometheusPort string
}

type GeneratorConfig struct {
	Endpoint     string
	Timeout      time.Duration
	FallbackText string
	CopyCacheTTL time.Duration
}

type BusinessConfig struct {
	StartingShards   int64
	RedemptionCost   int64
	ShortQueryMaxLen int
	OfferMinSeconds  int
	OfferMaxSeconds  int
	OfferMinDiscount int
	OfferMaxDiscount int
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	genTimeout, _ := strconv.Atoi(getEnv("GENERATOR_TIMEOUT_SECONDS", "8"))
	copyTTL, _ := strconv.Atoi(getEnv("COPY_CACHE_TTL_SECONDS", "3600"))
	startingShards, _ := strconv.Atoi(getEnv("STARTING_SHARDS", "500"))
	redemptionCost, _ := strconv.Atoi(getEnv("REDEMPTION_COST", "1500"))
	shortQueryMax, _ := strconv.Atoi(getEnv("SHORT_QUERY_MAX_LEN", "3"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:         strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicEngagement: getEnv("KAFKA_TOPIC_ENGAGEMENT", "engagement-events"),
			ConsumerGroup:   getEnv("KAFKA_CONSUMER_GROUP", "atelier-service-group"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			PrometheusPort: getEnv("PROMETHEUS_PORT", "9090"),
		},
		Generator: GeneratorConfig{
			Endpoint:     getEnv("GENERATOR_ENDPOINT", "http://localhost:9300/v1/generate"),
			Timeout:      time.Duration(genTimeout) * time.Second,
			FallbackText: getEnv("GENERATOR_FALLBACK_TEXT", "Crafted for the bold. Designed for you."),
			CopyCacheTTL: time.Duration(copyTTL) * time.Second,
		},
		Business: BusinessConfig{
			StartingShards:   int64(startingShards),
			RedemptionCost:   int64(redemptionCost),
			ShortQueryMaxLen: shortQueryMax,
			OfferMinSeconds:  60,
			OfferMaxSeconds:  10800,
			OfferMinDiscount: 12,
			OfferMaxDiscount: 50,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
