package stripe

import (
	"context"
	"fmt"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe/stripeclient"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
)

// StripeIntegrator deriva um bag parcial de KPIs do mês corrente a partir
// das assinaturas ativas da conta conectada. É o caminho de ingestão local
// usado quando o agente está indisponível.
type StripeIntegrator interface {
	SnapshotKPIs(ctx context.Context, company *domain.Company) (map[string]any, error)
	ValidateConnection(ctx context.Context, stripeAccount string) error
}

type Integrator struct {
	cfg    *config.Config
	client stripeclient.Client
}

func New(cfg *config.Config, client stripeclient.Client) StripeIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// SnapshotKPIs calcula MRR, ARR e contagem de clientes das assinaturas
// ativas. Valores monetários saem em unidades inteiras da moeda (a Stripe
// trabalha em centavos).
func (i *Integrator) SnapshotKPIs(ctx context.Context, company *domain.Company) (map[string]any, error) {
	if company == nil || !company.HasStripe() {
		return nil, fmt.Errorf("stripe: empresa sem conta conectada")
	}

	subscriptions, err := i.client.ListActiveSubscriptions(ctx, *company.StripeAccount)
	if err != nil {
		return nil, err
	}

	var mrrCents int64
	for _, sub := range subscriptions {
		for _, item := range sub.Items.Data {
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}

			switch item.Price.Recurring.Interval {
			case "month":
				mrrCents += item.Price.UnitAmount * quantity
			case "year":
				mrrCents += item.Price.UnitAmount * quantity / 12
			}
		}
	}

	mrr := utils.RoundWithTwoDecimalPlace(float64(mrrCents) / 100)

	return map[string]any{
		"mrr":              mrr,
		"arr":              utils.RoundWithTwoDecimalPlace(mrr * 12),
		"active_customers": len(subscriptions),
	}, nil
}

func (i *Integrator) ValidateConnection(ctx context.Context, stripeAccount string) error {
	return i.client.ValidateAccount(ctx, stripeAccount)
}
