package client

import (
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
)

// NewSalesActivitiesClient creates a client for the sales activities
// resource. The plural-minus-last-character guess would produce
// "sales_activitie", so the singular key is set explicitly.
func NewSalesActivitiesClient(httpClient *internalhttp.Client, perPage int) *ResourceClient {
	desc := resourceDescriptor{
		resourceType: "sales_activities",
		singular:     "sales_activity",
	}

	return NewResourceClient(httpClient, desc, perPage)
}
