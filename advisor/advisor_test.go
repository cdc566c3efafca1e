package advisor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"prospera-go-be/models"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func sampleTransactions(n int) []models.Transaction {
	txs := make([]models.Transaction, n)
	for i := range txs {
		txs[i] = models.Transaction{ID: "t", Type: models.Despesa, Amount: float64(i + 1), Category: models.Lazer, Description: "x"}
	}
	return txs
}

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.Despesa, Amount: 500, Category: models.Alimentacao},
		{Type: models.Receita, Amount: 1250.5, Category: models.Outros},
	}
	want := "despesa: 500 AOA em Alimentação, receita: 1250.5 AOA em Outros"
	if got := Summarize(txs); got != want {
		t.Fatalf("Summarize() = %q, want %q", got, want)
	}
}

func TestSummarizeLimitsToTen(t *testing.T) {
	got := Summarize(sampleTransactions(15))
	if n := strings.Count(got, "AOA em"); n != RecentLimit {
		t.Fatalf("expected %d entries, got %d in %q", RecentLimit, n, got)
	}
	if strings.Contains(got, "despesa: 11 AOA") {
		t.Fatalf("older transactions leaked into summary: %q", got)
	}
}

func TestBuildPromptIncludesSummary(t *testing.T) {
	prompt := BuildPrompt(sampleTransactions(1))
	if !strings.Contains(prompt, "despesa: 1 AOA em Lazer") {
		t.Fatalf("prompt missing summary: %q", prompt)
	}
	if !strings.Contains(prompt, "3 dicas") {
		t.Fatalf("prompt missing request: %q", prompt)
	}
}

func TestAdvise(t *testing.T) {
	cases := []struct {
		name string
		gen  Generator
		want string
	}{
		{
			name: "success is returned as is",
			gen:  generatorFunc(func(context.Context, string) (string, error) { return "  Poupe 10%.\n", nil }),
			want: "  Poupe 10%.\n",
		},
		{
			name: "error falls back",
			gen:  generatorFunc(func(context.Context, string) (string, error) { return "", errors.New("quota") }),
			want: FailureFallback,
		},
		{
			name: "empty falls back",
			gen:  generatorFunc(func(context.Context, string) (string, error) { return "", nil }),
			want: EmptyFallback,
		},
		{
			name: "panic falls back",
			gen:  generatorFunc(func(context.Context, string) (string, error) { panic("boom") }),
			want: FailureFallback,
		},
		{
			name: "nil generator falls back",
			gen:  nil,
			want: FailureFallback,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(tc.gen, time.Second)
			if got := a.Advise(context.Background(), sampleTransactions(2)); got != tc.want {
				t.Fatalf("Advise() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAdviseTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	gen := generatorFunc(func(ctx context.Context, _ string) (string, error) {
		<-block
		return "late", nil
	})
	a := New(gen, 20*time.Millisecond)

	start := time.Now()
	got := a.Advise(context.Background(), nil)
	if got != FailureFallback {
		t.Fatalf("Advise() = %q, want failure fallback", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %v", elapsed)
	}
}

func TestAdviseCollapsesOverlappingCalls(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	gen := generatorFunc(func(ctx context.Context, _ string) (string, error) {
		calls.Add(1)
		once.Do(func() { close(started) })
		<-release
		return "dica", nil
	})
	a := New(gen, 5*time.Second)

	results := make(chan string, 2)
	go func() { results <- a.Advise(context.Background(), nil) }()
	<-started
	go func() { results <- a.Advise(context.Background(), nil) }()
	// Give the second caller time to join the in-flight request.
	time.Sleep(50 * time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		if got := <-results; got != "dica" {
			t.Fatalf("result %d = %q", i, got)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("generator called %d times, want 1", n)
	}
}

func TestAdviseDoesNotShareAcrossDifferentTransactions(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "despesa: 1 AOA") && !strings.Contains(prompt, "despesa: 2 AOA") {
			once.Do(func() { close(started) })
			<-release
			return "antiga", nil
		}
		return "nova", nil
	})
	a := New(gen, 5*time.Second)

	older := make(chan string, 1)
	go func() { older <- a.Advise(context.Background(), sampleTransactions(1)) }()
	<-started

	if got := a.Advise(context.Background(), sampleTransactions(2)); got != "nova" {
		t.Fatalf("newer transactions got %q, want a tip built from their own prompt", got)
	}
	close(release)
	if got := <-older; got != "antiga" {
		t.Fatalf("older request = %q", got)
	}
}
