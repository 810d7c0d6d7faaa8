package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/farah2601/investor-plattform-sub002/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValueRange é a resposta da API de valores do Google Sheets.
type ValueRange struct {
	Range  string     `json:"range"`
	Values [][]any    `json:"values"`
}

type Client interface {
	GetValues(ctx context.Context, sheetID, valueRange string) (*ValueRange, error)
}

type SheetsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// GetValues lê um intervalo de células. Os valores chegam dinâmicos
// (número ou string; UNFORMATTED_VALUE evita máscaras de moeda).
func (c *SheetsClient) GetValues(ctx context.Context, sheetID, valueRange string) (*ValueRange, error) {
	endpoint := fmt.Sprintf(
		"%s/v4/spreadsheets/%s/values/%s?valueRenderOption=UNFORMATTED_VALUE&key=%s",
		c.config.Sheets.URL,
		url.PathEscape(sheetID),
		url.PathEscape(valueRange),
		c.config.Sheets.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sheets: erro ao ler intervalo (%d): %s", resp.StatusCode, raw)
	}

	var values ValueRange
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		return nil, err
	}

	return &values, nil
}
