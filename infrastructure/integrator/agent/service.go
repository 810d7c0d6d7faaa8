package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent/agentclient"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
)

// AgentIntegrator é a fronteira com o serviço externo de computação de
// insights. O núcleo não conhece o raciocínio do agente: envia as origens
// conectadas e recebe linhas de snapshot prontas para persistir.
type AgentIntegrator interface {
	RefreshCompany(ctx context.Context, company *domain.Company) ([]*domain.SnapshotRow, map[string]string, error)
	Available(ctx context.Context) bool
}

type Integrator struct {
	cfg    *config.Config
	client agentclient.Client
}

func New(cfg *config.Config, client agentclient.Client) AgentIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// RefreshCompany pede ao agente o recálculo dos snapshots da empresa e
// converte o payload para o domínio. Linhas com period_date não parseável
// são descartadas aqui, nunca propagadas ao builder de séries.
func (i *Integrator) RefreshCompany(ctx context.Context, company *domain.Company) ([]*domain.SnapshotRow, map[string]string, error) {
	if company == nil {
		return nil, nil, fmt.Errorf("agent: empresa não informada")
	}

	response, err := i.client.ComputeSnapshots(ctx, agentclient.ComputeRequest{
		CompanyID:     company.ID,
		StripeAccount: company.StripeAccount,
		SheetID:       company.SheetID,
		SheetRange:    company.SheetRange,
		Currency:      company.Currency,
	})
	if err != nil {
		return nil, nil, err
	}

	rows := make([]*domain.SnapshotRow, 0, len(response.Snapshots))
	for _, payload := range response.Snapshots {
		period, err := utils.ParsePeriodDate(payload.PeriodDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id":  company.ID,
				"period_date": payload.PeriodDate,
			}).Warn("agent: snapshot com period_date inválido descartado")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, nil, fmt.Errorf("agent: erro ao gerar id de snapshot: %w", err)
		}

		rows = append(rows, &domain.SnapshotRow{
			ID:         id,
			CompanyID:  company.ID,
			PeriodDate: period,
			KPIs:       payload.KPIs,
			Source:     "agent",
			CreatedAt:  time.Now().UTC(),
		})
	}

	return rows, response.Sources, nil
}

// Available indica se o agente pode ser invocado (configurado e saudável).
func (i *Integrator) Available(ctx context.Context) bool {
	if !i.cfg.Agent.Enabled || i.cfg.Agent.URL == "" {
		return false
	}
	return i.client.Healthy(ctx)
}
