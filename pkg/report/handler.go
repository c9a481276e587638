package report

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/mentordash/mentordash/internal/rest"
	"github.com/mentordash/mentordash/pkg/entry"
	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
)

// ReportRenderer turns an assembled report into one output representation.
type ReportRenderer interface {
	RenderReport(report Report) (string, error)
}

type ReportHandler struct {
	reportService     ReportService
	csvReportRenderer ReportRenderer
	resolver          roster.Resolver
	// defaultExpectedHours is the configured per-student target applied when
	// a request does not carry its own; zero means the parameter is required.
	defaultExpectedHours float64
	// defaultFormat selects the response representation when the request has
	// no Accept header ("csv" or "json").
	defaultFormat string
}

func NewReportHandler(
	reportService ReportService,
	csvReportRenderer ReportRenderer,
	resolver roster.Resolver,
	defaultExpectedHours float64,
	defaultFormat string,
) *ReportHandler {
	return &ReportHandler{reportService, csvReportRenderer, resolver, defaultExpectedHours, defaultFormat}
}

// GenerateReport accepts a raw CSV or JSON time-tracking export as the
// request body and responds with the assembled report. The representation is
// CSV when the request carries "Accept: text/csv", JSON when it names any
// other type, and the configured default when it has no Accept header.
func (handler *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	expectedHours := handler.defaultExpectedHours
	if expectedHoursString := r.URL.Query().Get("expectedHours"); expectedHoursString != "" {
		parsed, err := strconv.ParseFloat(expectedHoursString, 64)
		if err != nil {
			writeBadRequest(w, "Invalid expectedHours", "expectedHours must be a number greater than zero")
			return
		}
		expectedHours = parsed
	} else if expectedHours <= 0 {
		writeBadRequest(w, "Missing expectedHours",
			"expectedHours must be provided as a query parameter or configured as a server default")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := entry.Parse(body, handler.resolver)
	if err != nil {
		log.Debugf("failed to parse export: %v", err)
		writeBadRequest(w, "Invalid export data", err.Error())
		return
	}

	report, err := handler.reportService.BuildReport(r.Context(), entries, expectedHours)
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) || errors.Is(err, ErrInvalidDate) {
			writeBadRequest(w, "Invalid report input", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	accept := r.Header.Get("Accept")
	if accept == "text/csv" || (accept == "" && handler.defaultFormat == "csv") {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvReportRenderer.RenderReport(report)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ReportToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBadRequest(w http.ResponseWriter, message string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
