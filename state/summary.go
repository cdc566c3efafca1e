package state

import (
	"github.com/shopspring/decimal"

	"prospera-go-be/models"
)

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Balance returns income minus expenses over all transactions.
func (m *Model) Balance() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Balance(m.transactions)
}

// ExpenseByCategory returns per-category expense totals in catalog order,
// omitting categories with no expenses.
func (m *Model) ExpenseByCategory() []CategoryTotal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ExpenseByCategory(m.transactions)
}

// LessonProgress returns the percentage of completed lessons.
func (m *Model) LessonProgress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return LessonProgress(m.lessons)
}

// RecentTransactions returns up to n of the newest transactions.
func (m *Model) RecentTransactions(n int) []models.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(m.transactions) {
		n = len(m.transactions)
	}
	return cloneTransactions(m.transactions[:n])
}

func Balance(txs []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.Receita {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}
	}
	return balance
}

func ExpenseByCategory(txs []models.Transaction) []CategoryTotal {
	totals := make(map[models.Category]decimal.Decimal, len(models.Categories))
	for _, t := range txs {
		if t.Type != models.Despesa {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(decimal.NewFromFloat(t.Amount))
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, c := range models.Categories {
		total, ok := totals[c]
		if !ok || !total.IsPositive() {
			continue
		}
		out = append(out, CategoryTotal{Category: c, Total: total})
	}
	return out
}

func LessonProgress(lessons []models.Lesson) float64 {
	if len(lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range lessons {
		if l.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(lessons)) * 100
}
