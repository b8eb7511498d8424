package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// RemoteEngine posts the document to an HTTP recognition endpoint and reads
// the recognized text from its JSON response.
type RemoteEngine struct {
	name       string
	url        string
	healthUrl  string
	httpClient *http.Client
}

type remoteResponse struct {
	Text string `json:"text"`
}

func NewRemoteEngine(name, url, healthUrl string, timeout time.Duration) *RemoteEngine {
	return &RemoteEngine{
		name:       name,
		url:        url,
		healthUrl:  healthUrl,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (e *RemoteEngine) Name() string { return e.name }

// Initialize probes the endpoint's health URL when one is configured.
func (e *RemoteEngine) Initialize(ctx context.Context) error {
	if e.healthUrl == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.healthUrl, nil)
	if err != nil {
		return fmt.Errorf("engine %s: %w", e.name, err)
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("engine %s health check: %w", e.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("engine %s health check: status %d", e.name, resp.StatusCode)
	}

	zap.S().Named("remote_engine").Infow("Remote engine initialized", "engine", e.name, "url", e.url)
	return nil
}

func (e *RemoteEngine) ExtractText(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", NewExtractionError(e.name, "open document", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", NewExtractionError(e.name, "build request", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", NewExtractionError(e.name, "read document", err)
	}
	if err := writer.Close(); err != nil {
		return "", NewExtractionError(e.name, "build request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, &body)
	if err != nil {
		return "", NewExtractionError(e.name, "build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", NewExtractionError(e.name, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", NewExtractionError(e.name, fmt.Sprintf("status %d: %s", resp.StatusCode, bytes.TrimSpace(payload)), nil)
	}

	var parsed remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", NewExtractionError(e.name, "decode response", err)
	}

	return parsed.Text, nil
}

func (e *RemoteEngine) Cleanup() error {
	e.httpClient.CloseIdleConnections()
	return nil
}
