package client

import (
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
)

// NewTasksClient creates a client for the tasks resource. Tasks have no
// forget or bulk delete endpoints and no normalization.
func NewTasksClient(httpClient *internalhttp.Client, perPage int) *ResourceClient {
	desc := resourceDescriptor{
		resourceType: "tasks",
	}

	return NewResourceClient(httpClient, desc, perPage)
}
