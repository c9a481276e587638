package entry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
)

// Loader reads a time-tracking export from a local path or an http(s) URL
// and parses it into entries, detecting the CSV/JSON format from content.
type Loader struct {
	client *retryablehttp.Client
}

func NewLoader() *Loader {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &Loader{client: client}
}

// Load fetches and parses the export at source.
func (l *Loader) Load(ctx context.Context, source string, resolver roster.Resolver) ([]Entry, error) {
	data, err := l.fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(data, resolver)
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		log.Infof("Fetching time-tracking export from %s", source)
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch export: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch export: unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}
	return data, nil
}

// Parse detects the export format and dispatches to the matching parser.
func Parse(data []byte, resolver roster.Resolver) ([]Entry, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("export is empty")
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return ParseJSON(trimmed, resolver)
	}
	return ParseCSV(bytes.NewReader(trimmed), resolver)
}
