package agentclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/farah2601/investor-plattform-sub002/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ComputeRequest é o payload enviado ao agente de insights. O agente lê as
// origens conectadas (Stripe, planilha) e recalcula os snapshots mensais
// da empresa.
type ComputeRequest struct {
	CompanyID     string  `json:"company_id"`
	StripeAccount *string `json:"stripe_account,omitempty"`
	SheetID       *string `json:"sheet_id,omitempty"`
	SheetRange    *string `json:"sheet_range,omitempty"`
	Currency      string  `json:"currency"`
}

// SnapshotPayload é uma linha de snapshot como o agente a devolve: data do
// período em ISO e o bag de KPIs sem tipagem fixa.
type SnapshotPayload struct {
	PeriodDate string         `json:"period_date"`
	KPIs       map[string]any `json:"kpis"`
}

// ComputeResponse é a resposta do agente.
type ComputeResponse struct {
	OK        bool              `json:"ok"`
	Snapshots []SnapshotPayload `json:"snapshots"`
	Sources   map[string]string `json:"sources,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type Client interface {
	ComputeSnapshots(ctx context.Context, req ComputeRequest) (*ComputeResponse, error)
	Healthy(ctx context.Context) bool
}

type AgentClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AgentClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Agent.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// ComputeSnapshots invoca o agente via HTTP POST. A chamada é síncrona: o
// agente responde com as linhas recalculadas, que o chamador persiste.
func (c *AgentClient) ComputeSnapshots(ctx context.Context, req ComputeRequest) (*ComputeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/compute", c.config.Agent.URL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.Agent.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent: erro ao computar snapshots (%d): %s", resp.StatusCode, raw)
	}

	var response ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if !response.OK {
		return nil, fmt.Errorf("agent: computação recusada: %s", response.Error)
	}

	return &response, nil
}

// Healthy verifica se o agente está respondendo.
func (c *AgentClient) Healthy(ctx context.Context) bool {
	url := fmt.Sprintf("%s/healthz", c.config.Agent.URL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
