package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// SelectorClient implements freshsales.SelectorClient. Selector endpoints
// are flat configuration lookups; no normalization applies.
type SelectorClient struct {
	httpClient *internalhttp.Client
}

// NewSelectorClient creates a client for the selector endpoints.
func NewSelectorClient(httpClient *internalhttp.Client) *SelectorClient {
	return &SelectorClient{httpClient: httpClient}
}

// Fetch retrieves the raw envelope of one selector list by name.
func (c *SelectorClient) Fetch(ctx context.Context, name string) (freshsales.Envelope, error) {
	return c.fetchPath(ctx, "/selector/"+name)
}

func (c *SelectorClient) fetchPath(ctx context.Context, path string) (freshsales.Envelope, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching selector %s: %w", path, err)
	}

	var envelope freshsales.Envelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing selector %s response: %w: %w", path, freshsales.ErrMalformedResponse, err)
	}

	return envelope, nil
}

// list fetches a selector path and unwraps the collection under key.
func (c *SelectorClient) list(ctx context.Context, path, key string) ([]freshsales.Record, error) {
	envelope, err := c.fetchPath(ctx, path)
	if err != nil {
		return nil, err
	}

	return envelope.Collection(key), nil
}

// Owners lists the account's users.
func (c *SelectorClient) Owners(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/owners", "users")
}

// DealStages lists every deal stage across pipelines.
func (c *SelectorClient) DealStages(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/deal_stages", "deal_stages")
}

// Currencies lists the configured currencies.
func (c *SelectorClient) Currencies(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/currencies", "currencies")
}

// DealReasons lists the configured deal closed-lost reasons.
func (c *SelectorClient) DealReasons(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/deal_reasons", "deal_reasons")
}

// DealTypes lists the configured deal types.
func (c *SelectorClient) DealTypes(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/deal_types", "deal_types")
}

// DealPipelines lists the configured deal pipelines.
func (c *SelectorClient) DealPipelines(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/deal_pipelines", "deal_pipelines")
}

// DealPipelineStages lists the stages of one deal pipeline.
func (c *SelectorClient) DealPipelineStages(ctx context.Context, pipelineID int) ([]freshsales.Record, error) {
	path := "/selector/deal_pipelines/" + strconv.Itoa(pipelineID) + "/deal_stages"

	return c.list(ctx, path, "deal_stages")
}

// SalesActivityTypes lists the configured sales activity types.
func (c *SelectorClient) SalesActivityTypes(ctx context.Context) ([]freshsales.Record, error) {
	return c.list(ctx, "/selector/sales_activity_types", "sales_activity_types")
}

// SalesActivityOutcomes lists the outcomes of one sales activity type.
func (c *SelectorClient) SalesActivityOutcomes(ctx context.Context, activityTypeID int) ([]freshsales.Record, error) {
	path := "/selector/sales_activity_types/" + strconv.Itoa(activityTypeID) + "/sales_activity_outcomes"

	return c.list(ctx, path, "sales_activity_outcomes")
}
