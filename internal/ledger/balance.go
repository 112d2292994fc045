package ledger

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

// Summarize groups entries by exact customer name and folds each group into a
// balance: sales add, payments subtract. The result is ordered by TotalOwed,
// largest debt first; customers in advance come last. Ties keep the order in
// which customers first appear in entries.
//
// Nothing is cached: every call recomputes from the entries it is given.
func Summarize(entries []models.LedgerEntry) []models.CustomerSummary {
	index := make(map[string]int)
	var summaries []models.CustomerSummary

	for _, e := range entries {
		i, ok := index[e.CustomerName]
		if !ok {
			i = len(summaries)
			index[e.CustomerName] = i
			summaries = append(summaries, models.CustomerSummary{
				CustomerName:  e.CustomerName,
				TotalOwed:     decimal.Zero,
				LastEntryDate: e.Date,
			})
		}
		s := &summaries[i]
		s.TotalOwed = s.TotalOwed.Add(e.Signed())
		if e.Date.After(s.LastEntryDate) {
			s.LastEntryDate = e.Date
		}
	}

	slices.SortStableFunc(summaries, func(a, b models.CustomerSummary) int {
		return b.TotalOwed.Cmp(a.TotalOwed)
	})
	return summaries
}

// FilterByName keeps the summaries whose customer name contains query,
// ignoring case. Order is preserved and summaries is not modified.
func FilterByName(summaries []models.CustomerSummary, query string) []models.CustomerSummary {
	q := strings.ToLower(query)
	out := make([]models.CustomerSummary, 0, len(summaries))
	for _, s := range summaries {
		if strings.Contains(strings.ToLower(s.CustomerName), q) {
			out = append(out, s)
		}
	}
	return out
}

// SuggestCustomers returns the names of known customers containing query.
func SuggestCustomers(summaries []models.CustomerSummary, query string) []string {
	var names []string
	for _, s := range FilterByName(summaries, query) {
		names = append(names, s.CustomerName)
	}
	return names
}

// TotalOutstanding is the net amount owed to the shop across all customers.
func TotalOutstanding(summaries []models.CustomerSummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.TotalOwed)
	}
	return total
}

// Balance folds entries into a single signed balance.
func Balance(entries []models.LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Signed())
	}
	return balance
}

// newestFirst sorts entries by date, latest first.
func newestFirst(entries []models.LedgerEntry) {
	slices.SortStableFunc(entries, func(a, b models.LedgerEntry) int {
		return b.Date.Compare(a.Date)
	})
}
