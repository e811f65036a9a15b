package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
)

// OllamaAdvisor asks a local model server for an upgrade note per
// fixable finding. Strictly best-effort: every error here degrades the
// remediation report upstream, nothing gates on it.
type OllamaAdvisor struct {
	host       string
	model      string
	httpClient *http.Client
}

// NewOllamaAdvisor creates the advisor adapter.
func NewOllamaAdvisor(cfg config.AdvisorConfig) *OllamaAdvisor {
	return &OllamaAdvisor{
		host:  strings.TrimRight(cfg.Host, "/"),
		model: cfg.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// SuggestFix implements gateways.RemediationAdvisor.
func (a *OllamaAdvisor) SuggestFix(ctx context.Context, vuln entities.Vulnerability) (string, error) {
	prompt := fmt.Sprintf(
		"A dependency scan found a %s severity vulnerability in the package '%s' (installed version %s, fixed in %s). "+
			"In at most two sentences, describe the safest upgrade for a Maven project.",
		vuln.Severity, vuln.PackageName, vuln.InstalledVersion, vuln.FixedIn())

	body, err := json.Marshal(generateRequest{Model: a.model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("marshaling advisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned %s", resp.Status)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding advisor response: %w", err)
	}
	return strings.TrimSpace(decoded.Response), nil
}
