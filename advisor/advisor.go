// Package advisor asks a text generator for short motivational tips based on
// recent transactions. It never returns an error: every failure resolves to a
// fixed fallback tip.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	appErrors "prospera-go-be/errors"
	"prospera-go-be/models"
)

const (
	// FailureFallback is returned when the request fails for any reason.
	FailureFallback = "Mantenha a disciplina! Controlar seus gastos é o primeiro passo para a riqueza."
	// EmptyFallback is returned when the generator answers with no text.
	EmptyFallback = "Continue focado em registrar seus gastos para que eu possa te dar conselhos melhores!"

	// RecentLimit caps how many transactions go into the prompt.
	RecentLimit = 10
	// DefaultTimeout bounds a single advice request.
	DefaultTimeout = 10 * time.Second
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor wraps a Generator with the prompt, the deadline and the fallbacks.
type Advisor struct {
	gen     Generator
	timeout time.Duration
	flight  singleflight.Group
}

// New returns an Advisor. A nil gen makes every request fall back.
func New(gen Generator, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Advisor{gen: gen, timeout: timeout}
}

// Advise returns a tip for the given transactions, newest first. Calls with
// the same prompt that overlap an outstanding request share its result.
func (a *Advisor) Advise(ctx context.Context, txs []models.Transaction) string {
	prompt := BuildPrompt(txs)
	v, _, _ := a.flight.Do(prompt, func() (any, error) {
		tip, err := a.request(ctx, prompt)
		if err != nil {
			log.Printf("Advice request failed: %v", err)
			if errors.Is(err, appErrors.ErrEmptyAdvice) {
				return EmptyFallback, nil
			}
			return FailureFallback, nil
		}
		return tip, nil
	})
	return v.(string)
}

func (a *Advisor) request(ctx context.Context, prompt string) (string, error) {
	if a.gen == nil {
		return "", &appErrors.AdviceRequestError{Err: errors.New("no generator configured")}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		text, err := a.gen.Generate(ctx, prompt)
		done <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", &appErrors.AdviceRequestError{Err: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			return "", &appErrors.AdviceRequestError{Err: r.err}
		}
		if r.text == "" {
			return "", &appErrors.AdviceRequestError{Err: appErrors.ErrEmptyAdvice}
		}
		return r.text, nil
	}
}

// Summarize formats up to RecentLimit transactions as
// "<type>: <amount> AOA em <category>" joined by commas.
func Summarize(txs []models.Transaction) string {
	if len(txs) > RecentLimit {
		txs = txs[:RecentLimit]
	}
	parts := make([]string, 0, len(txs))
	for _, t := range txs {
		amount := strconv.FormatFloat(t.Amount, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%s: %s AOA em %s", t.Type, amount, t.Category))
	}
	return strings.Join(parts, ", ")
}

// BuildPrompt builds the mentor prompt for the given transactions.
func BuildPrompt(txs []models.Transaction) string {
	var b strings.Builder
	b.WriteString("Com base nestas transações recentes de um jovem angolano: ")
	b.WriteString(Summarize(txs))
	b.WriteString(".\n")
	b.WriteString("Dê 3 dicas curtas e motivadoras (em português) de como ele pode economizar mais ou investir melhor visando independência financeira em 5-10 anos.\n")
	b.WriteString("Foque na realidade de Angola (Kwanza, inflação, oportunidades locais).\n")
	b.WriteString("Seja breve e use um tom de mentor amigável.")
	return b.String()
}
