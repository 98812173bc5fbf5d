package client

import (
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
)

// NewNotesClient creates a client for the notes resource. Notes have no
// forget or bulk delete endpoints and no normalization.
func NewNotesClient(httpClient *internalhttp.Client, perPage int) *ResourceClient {
	desc := resourceDescriptor{
		resourceType: "notes",
	}

	return NewResourceClient(httpClient, desc, perPage)
}
