package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mentordash/mentordash/internal/utils"
	"github.com/mentordash/mentordash/pkg/entry"
	"github.com/mentordash/mentordash/pkg/report"
	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <export>",
	Short: "Generate a report from a time-tracking export (file path or URL)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expectedHours, _ := cmd.Flags().GetFloat64("expected-hours")
		output, _ := cmd.Flags().GetString("output")
		rosterPath, _ := cmd.Flags().GetString("roster")
		format, _ := cmd.Flags().GetString("format")
		teamFilter, _ := cmd.Flags().GetString("team")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var renderer report.ReportRenderer
		switch format {
		case "csv":
			renderer = report.NewCsvReportRenderer()
		case "json":
			renderer = report.NewJsonReportRenderer()
		default:
			return fmt.Errorf("unsupported format %q (available: csv, json)", format)
		}

		var resolver roster.Resolver = roster.NoopResolver{}
		if rosterPath != "" {
			f, err := os.Open(rosterPath)
			if err != nil {
				log.Warnf("Could not open roster file %s: %v. Names will not be resolved.", rosterPath, err)
			} else {
				defer f.Close()
				csvResolver, err := roster.NewCSVResolver(f)
				if err != nil {
					log.Warnf("Could not load roster file: %v. Names will not be resolved.", err)
				} else {
					log.Infof("Roster loaded: %d resolvable identifiers", csvResolver.Size())
					resolver = csvResolver
				}
			}
		}

		entries, err := entry.NewLoader().Load(cmd.Context(), args[0], resolver)
		if err != nil {
			return err
		}
		if teamFilter != "" {
			entries = filterByTeam(entries, teamFilter)
			if len(entries) == 0 {
				return fmt.Errorf("no entries found for team %q", teamFilter)
			}
		}
		if verbose {
			printSummary(cmd, entries)
		}

		result, err := report.NewReportServiceImpl(&utils.SystemClock{}).BuildReport(cmd.Context(), entries, expectedHours)
		if err != nil {
			return err
		}

		rendered, err := renderer.RenderReport(result)
		if err != nil {
			return err
		}

		if output == "" {
			cmd.Print(rendered)
			return nil
		}
		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		cmd.Printf("Report successfully generated: %s\n", output)
		return nil
	},
}

func filterByTeam(entries []entry.Entry, team string) []entry.Entry {
	filtered := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Team, team) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func printSummary(cmd *cobra.Command, entries []entry.Entry) {
	teams := map[string]struct{}{}
	students := map[string]struct{}{}
	totalHours := 0.0
	for _, e := range entries {
		teams[e.Team] = struct{}{}
		students[e.Student] = struct{}{}
		totalHours += e.DurationHours
	}
	teamNames := make([]string, 0, len(teams))
	for name := range teams {
		teamNames = append(teamNames, name)
	}
	sort.Strings(teamNames)

	cmd.Printf("Parsed %d time entries\n", len(entries))
	cmd.Printf("Teams found: %s\n", strings.Join(teamNames, ", "))
	cmd.Printf("Students: %d\n", len(students))
	cmd.Printf("Total hours logged: %.1f\n\n", totalHours)
}

func init() {
	generateCmd.Flags().Float64P("expected-hours", "e", 0, "Expected number of hours per student per week (required)")
	generateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	generateCmd.Flags().StringP("roster", "r", "", "Path to roster CSV for display-name resolution")
	generateCmd.Flags().StringP("format", "f", "csv", "Output format. Available: csv, json")
	generateCmd.Flags().StringP("team", "t", "", "Only report on a single team")
	generateCmd.Flags().BoolP("verbose", "v", false, "Print a dataset summary before the report")
	_ = generateCmd.MarkFlagRequired("expected-hours")
	rootCmd.AddCommand(generateCmd)
}
