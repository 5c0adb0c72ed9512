package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/charts"
	"github.com/de-tools/sales-atlas/pkg/logging"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/services/metrics"
	"github.com/de-tools/sales-atlas/pkg/services/trend"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	show     bool
	reporter *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute sales metrics and the daily revenue trend",
		RunE:  ac.run,
	}

	cmd.Flags().BoolVar(&ac.show, "show", false, "Open the rendered chart when done")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	// A .env file is optional; config has defaults for everything.
	_ = godotenv.Load()

	// Settings load failure surfaces on stderr directly: the log destination
	// is itself a setting, so there is nowhere else to report it yet.
	settings, err := config.Load(config.FileName)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.New(settings.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger.Info().Msg("run started")

	table, err := dataset.Load(settings.DataFile, settings.DateColumn)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to load data from %q", settings.DataFile)
		return err
	}
	logger.Info().Msgf("loaded %d records from %s", len(table.Rows), settings.DataFile)

	if err := dataset.ValidateSchema(table); err != nil {
		logger.Error().Err(err).Msg("schema validation failed")
		return err
	}

	report, err := metrics.Analyze(table)
	if err != nil {
		logger.Error().Err(err).Msg("failed to calculate metrics")
		return err
	}

	if err := ac.reporter.Handle(report); err != nil {
		logger.Error().Err(err).Msg("failed to print summary")
		return err
	}
	logger.Info().Msg("metrics calculated and summary printed")

	summaryPath, err := ac.reporter.Save(report, settings.OutputDir)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save summary")
		return err
	}
	logger.Info().Msgf("summary saved to %s", summaryPath)
	fmt.Fprintf(ac.reporter.Writer(), "\nSummary saved to: %s\n", summaryPath)

	// The summary artifact already exists; a chart failure is logged but
	// never changes the exit code.
	if err := ac.renderTrend(logger, settings, table, report); err != nil {
		logger.Error().Err(err).Msg("failed to plot daily revenue")
	}

	return nil
}

func (ac *AnalyzeCmd) renderTrend(
	logger zerolog.Logger,
	settings domain.Settings,
	table *domain.SalesTable,
	report domain.SummaryReport,
) error {
	points, err := trend.DailyRevenue(table)
	if err != nil {
		return err
	}

	plotPath := export.ChartPath(settings.OutputDir, report)
	err = charts.RenderLine(points, plotPath, charts.Options{
		Title:  settings.PlotTitle,
		XLabel: settings.PlotXLabel,
		YLabel: settings.PlotYLabel,
	})
	if err != nil {
		return err
	}

	logger.Info().Msgf("daily revenue plot saved to %s", plotPath)
	fmt.Fprintf(ac.reporter.Writer(), "Plot saved to: %s\n", plotPath)

	if ac.show {
		if err := browser.OpenFile(plotPath); err != nil {
			logger.Warn().Err(err).Msg("could not open chart viewer")
		}
	}
	return nil
}
