package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/sheets/sheetsclient"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
)

// SheetsIntegrator lê KPIs mantidos manualmente pelo fundador em uma
// planilha. Layout esperado: primeira linha com cabeçalhos (a primeira
// coluna é a data do período, as demais são nomes de métrica), uma linha
// por período.
type SheetsIntegrator interface {
	SnapshotRows(ctx context.Context, company *domain.Company) ([]*domain.SnapshotRow, error)
}

type Integrator struct {
	cfg    *config.Config
	client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// SnapshotRows converte o intervalo configurado da planilha em linhas de
// snapshot. Linhas com data não parseável são descartadas com aviso;
// células vazias simplesmente não entram no bag.
func (i *Integrator) SnapshotRows(ctx context.Context, company *domain.Company) ([]*domain.SnapshotRow, error) {
	if company == nil || !company.HasSheet() {
		return nil, fmt.Errorf("sheets: empresa sem planilha configurada")
	}

	sheetRange := "A1:Z1000"
	if company.SheetRange != nil && *company.SheetRange != "" {
		sheetRange = *company.SheetRange
	}

	values, err := i.client.GetValues(ctx, *company.SheetID, sheetRange)
	if err != nil {
		return nil, err
	}

	if values == nil || len(values.Values) < 2 {
		return []*domain.SnapshotRow{}, nil
	}

	headers := normalizeHeaders(values.Values[0])

	rows := make([]*domain.SnapshotRow, 0, len(values.Values)-1)
	for _, cells := range values.Values[1:] {
		if len(cells) == 0 {
			continue
		}

		period, err := utils.ParsePeriodDate(fmt.Sprintf("%v", cells[0]))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"cell":       cells[0],
			}).Warn("sheets: linha com data inválida descartada")
			continue
		}

		kpis := make(map[string]any)
		for col := 1; col < len(cells) && col < len(headers); col++ {
			if headers[col] == "" || cells[col] == nil {
				continue
			}
			kpis[headers[col]] = cells[col]
		}

		if len(kpis) == 0 {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("sheets: erro ao gerar id de snapshot: %w", err)
		}

		rows = append(rows, &domain.SnapshotRow{
			ID:         id,
			CompanyID:  company.ID,
			PeriodDate: period,
			KPIs:       kpis,
			Source:     "sheet",
		})
	}

	return rows, nil
}

// normalizeHeaders padroniza os cabeçalhos da planilha para chaves de
// métrica (minúsculas, espaços viram underscore).
func normalizeHeaders(headerRow []any) []string {
	headers := make([]string, len(headerRow))
	for i, cell := range headerRow {
		header := strings.TrimSpace(strings.ToLower(fmt.Sprintf("%v", cell)))
		headers[i] = strings.ReplaceAll(header, " ", "_")
	}
	return headers
}
