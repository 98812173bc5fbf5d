package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// resourceDescriptor declares how one resource kind maps onto the API:
// path segment, body wrapper key, default query parameters, the
// normalization applied to fetched records, and which optional
// operations the kind supports.
type resourceDescriptor struct {
	// resourceType is the plural path segment, e.g. "sales_accounts".
	resourceType string

	// singular is the wrapper key for create/update bodies and the unwrap
	// key on get responses. Empty means the plural minus its final
	// character.
	singular string

	// defaultParams are merged under caller parameters on every request.
	defaultParams freshsales.Params

	// normalizer resolves id references against the response envelope.
	// Nil means no normalization.
	normalizer freshsales.Normalizer

	canForget     bool
	canBulkDelete bool
}

// ResourceClient implements freshsales.ResourceClient for one resource
// kind, driven entirely by its descriptor.
type ResourceClient struct {
	httpClient *internalhttp.Client
	desc       resourceDescriptor
	perPage    int
}

// NewResourceClient creates a resource client from a descriptor. A
// perPage of 0 means the default page size.
func NewResourceClient(httpClient *internalhttp.Client, desc resourceDescriptor, perPage int) *ResourceClient {
	if desc.singular == "" && desc.resourceType != "" {
		desc.singular = desc.resourceType[:len(desc.resourceType)-1]
	}

	if perPage <= 0 {
		perPage = constants.DefaultPageSize
	}

	return &ResourceClient{
		httpClient: httpClient,
		desc:       desc,
		perPage:    perPage,
	}
}

// request sends one API call with the descriptor's default parameters
// merged under the caller's and decodes the body into an envelope.
func (c *ResourceClient) request(ctx context.Context, method, path string, params freshsales.Params, body interface{}) (freshsales.Envelope, error) {
	query := c.desc.defaultParams.Merge(params).ToValues()

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting %s %s: %w", method, path, err)
	}

	return decodeEnvelope(resp.Body)
}

// Views lists the saved filters defined for the resource.
func (c *ResourceClient) Views(ctx context.Context) ([]freshsales.View, error) {
	resp, err := c.httpClient.Get(ctx, "/"+c.desc.resourceType+"/filters", nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s views: %w", c.desc.resourceType, err)
	}

	var result struct {
		Filters []freshsales.View `json:"filters"`
	}

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s views response: %w: %w", c.desc.resourceType, freshsales.ErrMalformedResponse, err)
	}

	return result.Filters, nil
}

// Iterate returns a pull iterator over the records selected by a view.
func (c *ResourceClient) Iterate(ctx context.Context, viewID int, limit int) *freshsales.RecordIterator {
	fetcher := &viewPageFetcher{client: c, viewID: viewID}

	return freshsales.NewRecordIterator(ctx, fetcher, limit)
}

// ListAll eagerly materializes Iterate.
func (c *ResourceClient) ListAll(ctx context.Context, viewID int, limit int) ([]freshsales.Record, error) {
	records, err := c.Iterate(ctx, viewID, limit).All()
	if err != nil {
		return nil, fmt.Errorf("listing %s view %d: %w", c.desc.resourceType, viewID, err)
	}

	return records, nil
}

// Get fetches one record by id, normalized against its own envelope.
func (c *ResourceClient) Get(ctx context.Context, id int) (freshsales.Record, error) {
	path := "/" + c.desc.resourceType + "/" + strconv.Itoa(id)

	envelope, err := c.request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.desc.singular, id, err)
	}

	record, ok := envelope[c.desc.singular].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("getting %s %d: missing %q key: %w",
			c.desc.singular, id, c.desc.singular, freshsales.ErrMalformedResponse)
	}

	result := freshsales.Record(record)
	c.normalize(result, envelope)

	return result, nil
}

// Create posts a new record wrapped under the singular key.
func (c *ResourceClient) Create(ctx context.Context, data freshsales.Record) (freshsales.Envelope, error) {
	body := map[string]interface{}{c.desc.singular: data}

	envelope, err := c.request(ctx, http.MethodPost, "/"+c.desc.resourceType, nil, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.desc.singular, err)
	}

	return envelope, nil
}

// Update puts changed fields wrapped under the singular key.
func (c *ResourceClient) Update(ctx context.Context, id int, data freshsales.Record) (freshsales.Envelope, error) {
	path := "/" + c.desc.resourceType + "/" + strconv.Itoa(id)
	body := map[string]interface{}{c.desc.singular: data}

	envelope, err := c.request(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", c.desc.singular, id, err)
	}

	return envelope, nil
}

// Delete soft-deletes a record.
func (c *ResourceClient) Delete(ctx context.Context, id int) (freshsales.Envelope, error) {
	path := "/" + c.desc.resourceType + "/" + strconv.Itoa(id)

	envelope, err := c.request(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting %s %d: %w", c.desc.singular, id, err)
	}

	return envelope, nil
}

// Forget permanently erases a record. Kinds without forget support fail
// with ErrForgetNotSupported before any HTTP call.
func (c *ResourceClient) Forget(ctx context.Context, id int) (freshsales.Envelope, error) {
	if !c.desc.canForget {
		return nil, fmt.Errorf("forgetting %s %d: %w", c.desc.singular, id, freshsales.ErrForgetNotSupported)
	}

	path := "/" + c.desc.resourceType + "/" + strconv.Itoa(id) + "/forget"

	envelope, err := c.request(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("forgetting %s %d: %w", c.desc.singular, id, err)
	}

	return envelope, nil
}

// BulkDelete deletes several records in one call. Kinds without bulk
// support fail with ErrBulkDeleteNotSupported before any HTTP call.
func (c *ResourceClient) BulkDelete(ctx context.Context, ids []int) (freshsales.Envelope, error) {
	return c.bulkDestroy(ctx, map[string]interface{}{"selected_ids": ids})
}

func (c *ResourceClient) bulkDestroy(ctx context.Context, body map[string]interface{}) (freshsales.Envelope, error) {
	if !c.desc.canBulkDelete {
		return nil, fmt.Errorf("bulk deleting %s: %w", c.desc.resourceType, freshsales.ErrBulkDeleteNotSupported)
	}

	envelope, err := c.request(ctx, http.MethodPost, "/"+c.desc.resourceType+"/bulk_destroy", nil, body)
	if err != nil {
		return nil, fmt.Errorf("bulk deleting %s: %w", c.desc.resourceType, err)
	}

	return envelope, nil
}

// listSubresource fetches "/{plural}/{id}/{segment}" and unwraps the
// collection stored under key.
func (c *ResourceClient) listSubresource(ctx context.Context, id int, segment, key string) ([]freshsales.Record, error) {
	path := "/" + c.desc.resourceType + "/" + strconv.Itoa(id) + "/" + segment

	envelope, err := c.request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s %d %s: %w", c.desc.singular, id, segment, err)
	}

	return envelope.Collection(key), nil
}

func (c *ResourceClient) normalize(record freshsales.Record, envelope freshsales.Envelope) {
	if c.desc.normalizer != nil {
		c.desc.normalizer(record, envelope)
	}
}

// viewPageFetcher adapts a resource client to the iterator's page
// protocol. Records are normalized against their own page's envelope
// before they leave the fetcher.
type viewPageFetcher struct {
	client *ResourceClient
	viewID int
}

func (f *viewPageFetcher) FetchPage(ctx context.Context, page int) (*freshsales.RecordPage, error) {
	c := f.client
	path := "/" + c.desc.resourceType + "/view/" + strconv.Itoa(f.viewID)
	params := freshsales.Params{
		"page":     page,
		"per_page": c.perPage,
	}

	envelope, err := c.request(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s view %d page %d: %w", c.desc.resourceType, f.viewID, page, err)
	}

	records := envelope.Collection(c.desc.resourceType)
	for _, record := range records {
		c.normalize(record, envelope)
	}

	return &freshsales.RecordPage{
		Records:    records,
		TotalPages: envelope.TotalPages(),
	}, nil
}

// decodeEnvelope parses a response body. An empty body is a valid empty
// envelope; some delete endpoints return nothing.
func decodeEnvelope(body []byte) (freshsales.Envelope, error) {
	if len(body) == 0 {
		return freshsales.Envelope{}, nil
	}

	var envelope freshsales.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w: %w", freshsales.ErrMalformedResponse, err)
	}

	return envelope, nil
}
