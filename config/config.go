package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Redis     RedisConfigs     `toml:"redis"`
	Kafka     KafkaConfigs     `toml:"kafka"`
	Quiz      QuizConfigs      `toml:"quiz"`
	Sync      SyncConfigs      `toml:"sync"`
	Weekly    WeeklyConfigs    `toml:"weekly"`
}

// Duration wraps time.Duration so it can be written as "30m" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

type APIServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	DefaultLimit   int      `toml:"default_limit"`
	MaxLimit       int      `toml:"max_limit"`
}

func (s APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Secret     string   `toml:"secret"`
	Expiration Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr          string `toml:"addr"`
	ClientID      string `toml:"client_id"`
	ConsumerGroup string `toml:"consumer_group"`
}

type QuizConfigs struct {
	MaxQuestions int `toml:"max_questions"`
	MaxChoices   int `toml:"max_choices"`
}

type SyncConfigs struct {
	// BatchLimit bounds the number of unsynced quiz scores picked up by one
	// incremental run.
	BatchLimit int `toml:"batch_limit"`

	// Workers bounds the per-user concurrency of a full resynchronization.
	Workers int `toml:"workers"`

	// RetryAttempts and RetryBackoff control how batch jobs retry transient
	// storage failures. The synchronous path never retries.
	RetryAttempts int      `toml:"retry_attempts"`
	RetryBackoff  Duration `toml:"retry_backoff"`
}

type WeeklyConfigs struct {
	// BonusStreakStep is the streak length between two bonus tickets.
	BonusStreakStep int `toml:"bonus_streak_step"`
}
