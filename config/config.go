package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"

	"chatflow/pkg/consts"
)

const configFilePath = "/etc/chatflow/config.yaml"

var (
	chatflowConf *ChatflowConfModel
	PathPrefix   string
)

func LoadConfig() (*ChatflowConfModel, error) {
	if err := loadViperConfig(configFilePath); err != nil {
		return nil, err
	}

	return chatflowConf, nil
}

func loadViperConfig(filePath string) error {
	viper.SetConfigFile(filePath)
	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading viper config: %w", err)
	}

	setEnvConf()
	setDefault()

	viper.WatchConfig()

	err = viper.Unmarshal(&chatflowConf)
	if err != nil {
		return fmt.Errorf("error loading viper config to struct: %w", err)
	}

	// /api/v1
	PathPrefix, err = url.JoinPath(chatflowConf.Server.APIPrefix, chatflowConf.Server.APIVersion)
	if err != nil {
		return err
	}

	return nil
}

func setEnvConf() {
	viper.BindEnv("store.path", "CHATFLOW_STORE_PATH")
	viper.BindEnv("auth.sentinel_password", "CHATFLOW_SENTINEL_PASSWORD")
}

func setDefault() {
	viper.SetDefault("mode", "local")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.api_prefix", "api")
	viper.SetDefault("server.api_version", "v1")
	viper.SetDefault("store.path", fmt.Sprintf("/var/lib/%s/store.json", consts.AppName))
	viper.SetDefault("auth.sentinel_password", "password")
	viper.SetDefault("notification.permission", consts.PermissionDefault)
	viper.SetDefault("seed.demo_users", true)
}

// GetConfig returns env config
func GetConfig() *ChatflowConfModel {
	return chatflowConf
}
