package freshsales

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
)

// RecordPage is one fetched page of a view listing: the records in server
// order and the page count the envelope declared.
type RecordPage struct {
	Records    []Record
	TotalPages int
}

// PageFetcher fetches one page of a view listing. Implementations
// normalize each record against the page's envelope before returning.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*RecordPage, error)
}

// RecordIterator is a pull-based cursor over a paginated view listing.
// Pages are fetched lazily starting at 1; iteration ends when the
// just-fetched page number exceeds the envelope's total_pages, or when
// the caller-visible limit is reached, possibly mid-page. A page-fetch
// failure terminates the iterator with that error rather than silently
// stopping.
//
// Iterators are single-use; obtain a fresh one to restart.
type RecordIterator struct {
	ctx     context.Context
	fetcher PageFetcher
	limit   int

	page       int
	totalPages int
	fetched    bool
	buffer     []Record
	index      int
	emitted    int
	err        error
}

// NewRecordIterator creates an iterator over a view listing. A limit of 0
// means no limit.
func NewRecordIterator(ctx context.Context, fetcher PageFetcher, limit int) *RecordIterator {
	return &RecordIterator{
		ctx:     ctx,
		fetcher: fetcher,
		limit:   limit,
		page:    constants.FirstPage,
	}
}

// HasNext reports whether another record may be available. It never
// performs a fetch; before the first page is loaded it reports true.
func (it *RecordIterator) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.limit > 0 && it.emitted >= it.limit {
		return false
	}

	if it.index < len(it.buffer) {
		return true
	}

	if !it.fetched {
		return true
	}

	return it.page <= it.totalPages
}

// Next returns the next record, fetching the next page when the buffer is
// exhausted. Returns ErrNoMoreRecords after the final record.
func (it *RecordIterator) Next() (Record, error) {
	if it.err != nil {
		return nil, it.err
	}

	if !it.HasNext() {
		return nil, ErrNoMoreRecords
	}

	// keep fetching while pages remain: a page in the middle of the view
	// can be empty, and the server may report more pages than it delivers
	for it.index >= len(it.buffer) {
		if it.fetched && it.page > it.totalPages {
			return nil, ErrNoMoreRecords
		}

		err := it.fetchNextPage()
		if err != nil {
			it.err = err

			return nil, err
		}
	}

	record := it.buffer[it.index]
	it.index++
	it.emitted++

	return record, nil
}

// All materializes the remaining records in order.
func (it *RecordIterator) All() ([]Record, error) {
	var records []Record

	for it.HasNext() {
		record, err := it.Next()
		if errors.Is(err, ErrNoMoreRecords) {
			break
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// ForEach applies fn to each remaining record, stopping on the first
// error fn returns.
func (it *RecordIterator) ForEach(fn func(Record) error) error {
	for it.HasNext() {
		record, err := it.Next()
		if errors.Is(err, ErrNoMoreRecords) {
			break
		}

		if err != nil {
			return err
		}

		err = fn(record)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *RecordIterator) fetchNextPage() error {
	page, err := it.fetcher.FetchPage(it.ctx, it.page)
	if err != nil {
		return err
	}

	it.buffer = page.Records
	it.index = 0
	it.totalPages = page.TotalPages
	it.fetched = true
	it.page++

	return nil
}
