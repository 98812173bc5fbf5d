package client

import (
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// Normalizers resolve id-reference fields on a record into the matching
// objects from the response envelope's sibling collections. A reference
// field is only touched when present on the record; an unmatched id or a
// missing collection resolves to nil. Resolved objects alias the
// envelope's collections rather than copying them.

// setReference resolves a single "{field}_id" reference against one
// sibling collection and stores the result under target.
func setReference(record freshsales.Record, envelope freshsales.Envelope, idField, collection, target string) {
	id, ok := record[idField]
	if !ok {
		return
	}

	match := freshsales.FindByID(envelope.Collection(collection), id)
	if match == nil {
		record[target] = nil

		return
	}

	record[target] = map[string]any(match)
}

// normalizeContact resolves owner, contact status, and appointments. Each
// referenced appointment additionally resolves its own outcome.
func normalizeContact(record freshsales.Record, envelope freshsales.Envelope) {
	setReference(record, envelope, "owner_id", "users", "owner")
	setReference(record, envelope, "contact_status_id", "contact_status", "contact_status")

	rawIDs, ok := record["appointment_ids"].([]any)
	if !ok {
		return
	}

	appointments := envelope.Collection("appointments")
	outcomes := envelope.Collection("outcomes")
	resolved := make([]any, 0, len(rawIDs))

	for _, id := range rawIDs {
		appointment := freshsales.FindByID(appointments, id)
		if appointment == nil {
			continue
		}

		outcome := freshsales.FindByID(outcomes, appointment["outcome_id"])
		if outcome == nil {
			appointment["outcome"] = nil
		} else {
			appointment["outcome"] = map[string]any(outcome)
		}

		resolved = append(resolved, map[string]any(appointment))
	}

	record["appointments"] = resolved
}

// normalizeAccount resolves owner and industry type.
func normalizeAccount(record freshsales.Record, envelope freshsales.Envelope) {
	setReference(record, envelope, "owner_id", "users", "owner")
	setReference(record, envelope, "industry_type_id", "industry_types", "industry_type")
}

// normalizeDeal resolves owner, account, and deal stage.
func normalizeDeal(record freshsales.Record, envelope freshsales.Envelope) {
	setReference(record, envelope, "owner_id", "users", "owner")
	setReference(record, envelope, "sales_account_id", "sales_accounts", "sales_account")
	setReference(record, envelope, "deal_stage_id", "deal_stages", "deal_stage")
}

// normalizeLead resolves owner and lead stage.
func normalizeLead(record freshsales.Record, envelope freshsales.Envelope) {
	setReference(record, envelope, "owner_id", "users", "owner")
	setReference(record, envelope, "lead_stage_id", "lead_stages", "lead_stage")
}
