// Package fsclient creates Freshsales API clients.
//
// The package validates the configuration, normalizes the account domain,
// and returns an implementation of the freshsales.Client interface:
//
//	cli, err := fsclient.New(&freshsales.Config{
//	  Domain: "acme",
//	  APIKey: os.Getenv("FRESHSALES_API_KEY"),
//	})
//
// See the freshsales package for the interfaces the returned client
// implements.
package fsclient
