// Package fsclient provides the main entry point for creating Freshsales API clients.
package fsclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/freshsales-client/internal/client"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// New creates a new Freshsales API client for the configured account.
func New(config *freshsales.Config) (freshsales.Client, error) {
	if config == nil {
		return nil, freshsales.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, freshsales.ErrDomainRequired
	}

	config.Domain = NormalizeDomain(config.Domain)

	fsClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return fsClient, nil
}

// NormalizeDomain reduces a domain value to the bare account subdomain.
// Accepts "acme", "acme.freshsales.io", or a full URL form of either.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	domain = strings.TrimSuffix(domain, ".freshsales.io")

	return domain
}
