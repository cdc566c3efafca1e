package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"prospera-go-be/models"
	"prospera-go-be/state"
)

// recentCount is how many transactions the home view lists.
const recentCount = 3

var kwanzaPrinter = message.NewPrinter(language.MustParse("pt-AO"))

// FormatKwanza renders an amount with pt-AO digit grouping, a comma before
// the fraction and the Kz suffix. The fraction is taken from the decimal's
// exact digits.
func FormatKwanza(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	whole := amount.Truncate(0)
	text := sign + kwanzaPrinter.Sprintf("%d", whole.IntPart())
	if _, frac, ok := strings.Cut(amount.Sub(whole).String(), "."); ok {
		text += "," + frac
	}
	return text + " Kz"
}

// Summary is the home and finance view aggregate.
type Summary struct {
	Profile           models.UserProfile    `json:"profile"`
	Balance           decimal.Decimal       `json:"balance"`
	BalanceFormatted  string                `json:"balanceFormatted"`
	ExpenseByCategory []state.CategoryTotal `json:"expenseByCategory"`
	LessonProgress    float64               `json:"lessonProgress"`
	Recent            []models.Transaction  `json:"recent"`
}

func (h *Handler) GetSummary(c *fiber.Ctx) error {
	balance := h.model.Balance()
	return c.JSON(Summary{
		Profile:           h.model.Profile(),
		Balance:           balance,
		BalanceFormatted:  FormatKwanza(balance),
		ExpenseByCategory: h.model.ExpenseByCategory(),
		LessonProgress:    h.model.LessonProgress(),
		Recent:            h.model.RecentTransactions(recentCount),
	})
}
