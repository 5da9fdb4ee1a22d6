// Package source acquires tables from local files and http(s) URLs.
package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"

	"github.com/sartorproj/tsviz/timeseries"
)

// Document is a fetched and parsed source.
type Document struct {
	Table        *timeseries.Table
	Name         string
	Size         int64
	LastModified time.Time
}

// Fetcher reads and parses sources. Reads are retried; parsing is not.
type Fetcher struct {
	Client *http.Client
	Logger logr.Logger
	Retry  *RetryOptions
	CSV    *timeseries.CSVOptions
	XLSX   *timeseries.XLSXOptions
}

// NewFetcher returns a fetcher with a clean HTTP client and default retries.
func NewFetcher(logger logr.Logger) *Fetcher {
	return &Fetcher{
		Client: cleanhttp.DefaultClient(),
		Logger: logger,
		Retry:  DefaultRetryOptions(),
	}
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch reads location and parses it as XLSX when its name ends in .xlsx and
// as CSV otherwise. A read that still fails after the retries returns a
// *timeseries.SourceError wrapping timeseries.ErrIO.
func (f *Fetcher) Fetch(ctx context.Context, location string) (*Document, error) {
	logger := f.Logger.WithValues("source", location)

	var (
		data []byte
		doc  *Document
	)
	err := doWithRetry(ctx, logger, func() error {
		var err error
		data, doc, err = f.read(ctx, location)
		return err
	}, f.Retry)
	if err != nil {
		return nil, timeseries.NewSourceError(location, "fetch", errors.Wrap(timeseries.ErrIO, err.Error()))
	}

	table, err := f.parse(doc.Name, data)
	if err != nil {
		return nil, timeseries.NewSourceError(location, "parse", err)
	}
	table.Name = doc.Name
	doc.Table = table

	logger.V(1).Info("Fetched source", "rows", table.Len(), "columns", len(table.Columns), "bytes", doc.Size)
	return doc, nil
}

func (f *Fetcher) read(ctx context.Context, location string) ([]byte, *Document, error) {
	if IsURL(location) {
		return f.readURL(ctx, location)
	}
	return readFile(location)
}

func readFile(filename string) ([]byte, *Document, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	return data, &Document{
		Name:         filepath.Base(filename),
		Size:         int64(len(data)),
		LastModified: info.ModTime(),
	}, nil
}

func (f *Fetcher) readURL(ctx context.Context, location string) ([]byte, *Document, error) {
	client := f.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	doc := &Document{
		Name: path.Base(req.URL.Path),
		Size: int64(len(data)),
	}
	if modified, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		doc.LastModified = modified
	}
	return data, doc, nil
}

func (f *Fetcher) parse(name string, data []byte) (*timeseries.Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return timeseries.LoadXLSXFromReader(bytes.NewReader(data), f.XLSX)
	}
	return timeseries.LoadCSVFromReader(bytes.NewReader(data), f.CSV)
}
