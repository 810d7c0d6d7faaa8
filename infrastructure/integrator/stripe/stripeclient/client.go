package stripeclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/farah2601/investor-plattform-sub002/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Subscription é o recorte mínimo de uma assinatura Stripe que o dashboard
// precisa para derivar MRR e contagem de clientes.
type Subscription struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Items    struct {
		Data []struct {
			Quantity int64 `json:"quantity"`
			Price    struct {
				UnitAmount int64 `json:"unit_amount"`
				Recurring  struct {
					Interval string `json:"interval"`
				} `json:"recurring"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

type subscriptionList struct {
	Data    []Subscription `json:"data"`
	HasMore bool           `json:"has_more"`
}

type Client interface {
	ListActiveSubscriptions(ctx context.Context, stripeAccount string) ([]Subscription, error)
	ValidateAccount(ctx context.Context, stripeAccount string) error
}

type StripeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// ListActiveSubscriptions pagina as assinaturas ativas de uma conta
// conectada (header Stripe-Account).
func (c *StripeClient) ListActiveSubscriptions(ctx context.Context, stripeAccount string) ([]Subscription, error) {
	var all []Subscription
	startingAfter := ""

	for {
		params := url.Values{}
		params.Set("status", "active")
		params.Set("limit", strconv.Itoa(100))
		if startingAfter != "" {
			params.Set("starting_after", startingAfter)
		}

		endpoint := fmt.Sprintf("%s/v1/subscriptions?%s", c.config.Stripe.URL, params.Encode())
		page, err := c.getSubscriptionPage(ctx, endpoint, stripeAccount)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Data...)
		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		startingAfter = page.Data[len(page.Data)-1].ID
	}

	return all, nil
}

func (c *StripeClient) getSubscriptionPage(ctx context.Context, endpoint, stripeAccount string) (*subscriptionList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Stripe.SecretKey)
	req.Header.Set("Stripe-Account", stripeAccount)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stripe: erro ao listar assinaturas (%d): %s", resp.StatusCode, raw)
	}

	var page subscriptionList
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ValidateAccount confirma que a conta conectada existe e o secret tem
// acesso a ela.
func (c *StripeClient) ValidateAccount(ctx context.Context, stripeAccount string) error {
	endpoint := fmt.Sprintf("%s/v1/accounts/%s", c.config.Stripe.URL, stripeAccount)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Stripe.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stripe: conta %s inacessível (%d): %s", stripeAccount, resp.StatusCode, raw)
	}

	return nil
}
