package config

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// FileName is the fixed settings resource read from the working directory.
const FileName = "config.yaml"

const envPrefix = "SALES_ATLAS"

// Load reads the settings resource and resolves every recognized key, falling
// back to its default when the file omits it. Environment variables prefixed
// with SALES_ATLAS_ override file values. A missing or malformed resource is
// an error; no partial settings are returned.
func Load(path string) (domain.Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("data_file", "sales_data.csv")
	v.SetDefault("date_column", "date")
	v.SetDefault("log_file", "sales_analysis.log")
	v.SetDefault("plot_title", "Daily Revenue Trend")
	v.SetDefault("plot_xlabel", "Date")
	v.SetDefault("plot_ylabel", "Revenue")
	v.SetDefault("output_dir", "outputs")

	if err := v.ReadInConfig(); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}
