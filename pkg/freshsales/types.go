package freshsales

// Record is one remote CRM entity (contact, account, deal, ...). The
// remote API enforces no schema beyond an id field, so records are kept
// as plain keyed maps; callers own returned records and may mutate them
// freely without affecting remote state.
type Record map[string]any

// ID returns the record's id field, or nil when absent.
func (r Record) ID() any {
	return r["id"]
}

// Envelope is the full decoded JSON body of one list or get response. It
// holds the page of records under the resource-type key, sibling
// collections used for normalization (users, deal_stages, appointments,
// ...) and pagination metadata under "meta".
type Envelope map[string]any

// Collection returns the named sibling collection, or nil when the
// collection is missing or not a JSON array.
func (e Envelope) Collection(name string) []Record {
	raw, ok := e[name].([]any)
	if !ok {
		return nil
	}

	records := make([]Record, 0, len(raw))

	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, Record(obj))
		}
	}

	return records
}

// TotalPages returns meta.total_pages, or 0 when the envelope carries no
// pagination metadata.
func (e Envelope) TotalPages() int {
	meta, ok := e["meta"].(map[string]any)
	if !ok {
		return 0
	}

	pages, ok := toFloat(meta["total_pages"])
	if !ok {
		return 0
	}

	return int(pages)
}

// View is a server-side saved filter; listing a view returns the records
// it selects.
type View struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FindByID scans a sibling collection for the record whose id equals id.
// Returns nil when there is no match; missing references are never an
// error.
func FindByID(records []Record, id any) Record {
	for _, record := range records {
		if SameID(record["id"], id) {
			return record
		}
	}

	return nil
}

// SameID reports whether two id values refer to the same record. JSON
// numbers decode as float64 while callers often hold ints, so numeric
// values are compared as floats; everything else compares directly.
func SameID(a, b any) bool {
	if a == nil || b == nil {
		return false
	}

	if a == b {
		return true
	}

	aNum, aOK := toFloat(a)
	bNum, bOK := toFloat(b)

	return aOK && bOK && aNum == bNum
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Normalizer resolves id-reference fields on a record into embedded
// objects using sibling collections of the same envelope. Normalizers
// mutate the record in place, are idempotent, and never fail: a missing
// collection or unmatched id resolves to nil.
type Normalizer func(Record, Envelope)
