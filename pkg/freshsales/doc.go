// Package freshsales provides types, interfaces, and helpers for working
// with the Freshsales CRM REST API.
//
// # Overview
//
// The freshsales package defines the schemaless Record/Envelope types,
// the query parameter encoding, the per-resource client interfaces
// (ContactsClient, AccountsClient, ...) and the paginated RecordIterator.
// A concrete implementation is provided by the fsclient package, which
// wires configuration and transport. Most consumers should import
// fsclient to construct a client and then interact with the interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
//	  "github.com/fivetwenty-io/freshsales-client/pkg/fsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fsclient.New(&freshsales.Config{Domain: "acme", APIKey: "token"})
//	  if err != nil { log.Fatal(err) }
//
//	  contact, err := cli.Contacts().Get(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  _ = contact
//	}
//
// # Views and pagination
//
// Listing goes through server-side saved filters ("views"). Iterate
// returns a pull-based iterator that fetches pages lazily and applies
// the resource's normalization to every record before yielding it:
//
//	it := cli.Contacts().Iterate(ctx, viewID, 0)
//	for it.HasNext() {
//	  contact, err := it.Next()
//	  if err != nil { break }
//	  _ = contact
//	}
//
// or fetch everything at once with ListAll.
//
// # Normalization
//
// List and get responses carry sibling collections (users, deal_stages,
// appointments, outcomes, ...) next to the primary records. The client
// resolves id-reference fields against those collections so callers see
// embedded objects: a contact's owner_id becomes contact["owner"].
// Missing collections or unmatched ids resolve to nil, never an error.
//
// # Errors
//
// Non-2xx responses are represented by RequestError carrying the status
// code and raw body. Helpers such as IsNotFound and IsUnauthorized make
// it easy to branch on common cases. Operations a resource kind does not
// support (forget on tasks, for example) fail with a sentinel error
// before any HTTP call.
package freshsales
