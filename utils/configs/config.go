package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	ENV            string `json:"env" mapstructure:"env"`
	MerchantID     string `json:"merchant_id" mapstructure:"merchant_id"`
	AppID          string `json:"app_id" mapstructure:"app_id"`
	PrivateKeyPath string `json:"private_key_path" mapstructure:"private_key_path"`
	PublicKeyPath  string `json:"public_key_path" mapstructure:"public_key_path"`
	ClientType     string `json:"client_type" mapstructure:"client_type"`
	Host           string `json:"host" mapstructure:"host"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
