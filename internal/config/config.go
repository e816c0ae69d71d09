package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	// 规则书版本
	Edition int `mapstructure:"edition"`
	// 随机种子，0 表示随机
	Seed        uint64 `mapstructure:"seed"`
	HistoryFile string `mapstructure:"history_file"`
	NoColor     bool   `mapstructure:"no_color"`
}

var cfg *AppConfig

// GetConfig 首次调用时加载配置，之后返回同一份
func GetConfig() *AppConfig {
	if cfg == nil {
		cfg = InitConfig()
	}

	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("app_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MAFIA")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("edition", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("history_file", ".mafia_history")
	v.SetDefault("no_color", false)

	return v
}

// LoadConfig 读取配置，配置文件不存在时使用默认值和环境变量
func LoadConfig(v *viper.Viper) (*AppConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("加载配置失败: %w", err)
		}
	}

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	return &config, nil
}

func InitConfig() *AppConfig {
	config, err := LoadConfig(newViper())
	if err != nil {
		panic(err)
	}

	cfg = config

	return config
}
