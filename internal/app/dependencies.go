package app

import (
	"fmt"
	"os"

	"github.com/mentordash/mentordash/internal/config"
	"github.com/mentordash/mentordash/internal/utils"
	"github.com/mentordash/mentordash/pkg/entry"
	"github.com/mentordash/mentordash/pkg/report"
	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Resolver roster.Resolver

	EntryLoader *entry.Loader

	ReportService      *report.ReportServiceImpl
	CsvReportRenderer  *report.CsvReportRendererImpl
	JsonReportRenderer *report.JsonReportRendererImpl
	ReportHandler      *report.ReportHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Resolver = roster.NoopResolver{}
	if cfg.Report.RosterPath != "" {
		f, err := os.Open(cfg.Report.RosterPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster file: %w", err)
		}
		defer f.Close()
		resolver, err := roster.NewCSVResolver(f)
		if err != nil {
			return nil, err
		}
		log.Infof("Roster loaded from %s (%d identifiers)", cfg.Report.RosterPath, resolver.Size())
		deps.Resolver = resolver
	}

	deps.EntryLoader = entry.NewLoader()

	deps.Clock = &utils.SystemClock{}
	deps.ReportService = report.NewReportServiceImpl(deps.Clock)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.JsonReportRenderer = report.NewJsonReportRenderer()
	deps.ReportHandler = report.NewReportHandler(
		deps.ReportService,
		deps.CsvReportRenderer,
		deps.Resolver,
		cfg.Report.ExpectedHours,
		cfg.Report.Format,
	)

	return deps, nil
}
