package domain

// Settings is the resolved run configuration. It is populated once by the
// config service and passed to each stage by value.
type Settings struct {
	DataFile   string `mapstructure:"data_file"`
	DateColumn string `mapstructure:"date_column"`
	LogFile    string `mapstructure:"log_file"`
	PlotTitle  string `mapstructure:"plot_title"`
	PlotXLabel string `mapstructure:"plot_xlabel"`
	PlotYLabel string `mapstructure:"plot_ylabel"`
	OutputDir  string `mapstructure:"output_dir"`
}
