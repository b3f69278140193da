package ledger

import (
	"sort"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SortByDate returns a copy of txs stably sorted by calendar date. Unparseable
// dates use key 0, so they sort as the oldest records.
func SortByDate(txs []entity.Transaction, newestFirst bool) []entity.Transaction {
	type keyed struct {
		key int
		tx  entity.Transaction
	}

	items := make([]keyed, len(txs))
	for i, tx := range txs {
		key := 0
		if d, ok := ParseDate(tx.OccurredOn); ok {
			key = d.Ordinal()
		}
		items[i] = keyed{key: key, tx: tx}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if newestFirst {
			return items[i].key > items[j].key
		}
		return items[i].key < items[j].key
	})

	out := make([]entity.Transaction, len(items))
	for i, item := range items {
		out[i] = item.tx
	}
	return out
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = entity.DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices an already sorted collection. Pages start at 1; a page
// outside the collection yields an empty item list.
func Paginate(sorted []entity.Transaction, page, pageSize int) entity.TransactionPage {
	if pageSize <= 0 {
		pageSize = entity.DefaultPageSize
	}

	result := entity.TransactionPage{
		Items:      []entity.Transaction{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(sorted),
		TotalPages: TotalPages(len(sorted), pageSize),
	}

	if page < 1 {
		return result
	}

	start := (page - 1) * pageSize
	if start >= len(sorted) {
		return result
	}
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	result.Items = append(result.Items, sorted[start:end]...)
	return result
}

// View sorts txs by date and returns the requested page along with the item
// and page counts.
func View(txs []entity.Transaction, newestFirst bool, page, pageSize int) entity.TransactionPage {
	return Paginate(SortByDate(txs, newestFirst), page, pageSize)
}
