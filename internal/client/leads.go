package client

import (
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// NewLeadsClient creates a client for the leads resource. Leads support
// forget but not bulk delete.
func NewLeadsClient(httpClient *internalhttp.Client, perPage int) *ResourceClient {
	desc := resourceDescriptor{
		resourceType: "leads",
		defaultParams: freshsales.Params{
			"include":   "sales_account,appointments,owner,lead_stage",
			"sort":      "updated_at",
			"sort_type": "desc",
		},
		normalizer: normalizeLead,
		canForget:  true,
	}

	return NewResourceClient(httpClient, desc, perPage)
}
