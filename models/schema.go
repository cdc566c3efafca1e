package models

import (
	"time"
)

// TransactionType distinguishes income from expense.
type TransactionType string

const (
	Receita TransactionType = "receita"
	Despesa TransactionType = "despesa"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == Receita || t == Despesa
}

// Category is one of the fixed transaction categories.
type Category string

const (
	Alimentacao  Category = "Alimentação"
	Transporte   Category = "Transporte"
	Educacao     Category = "Educação"
	Lazer        Category = "Lazer"
	Poupanca     Category = "Poupança"
	Habitacao    Category = "Habitação"
	Investimento Category = "Investimento"
	Outros       Category = "Outros"
)

// Categories lists every category in display order.
var Categories = []Category{
	Alimentacao, Transporte, Educacao, Lazer, Poupanca, Habitacao, Investimento, Outros,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Frequency of a habit.
type Frequency string

const (
	Diaria  Frequency = "diaria"
	Semanal Frequency = "semanal"
)

// UserProfile is the single gamified profile of the installation.
type UserProfile struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}

// Transaction represents a recorded income or expense.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // ISO-8601
}

// TransactionDraft is a transaction before the model assigns its id.
type TransactionDraft struct {
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Habit is a recurring activity the user checks off per day.
type Habit struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CompletedDays []string  `json:"completedDays"` // YYYY-MM-DD, treated as a set
	Frequency     Frequency `json:"frequency"`
}

// CompletedOn reports whether date is in the habit's completed days.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDays {
		if d == date {
			return true
		}
	}
	return false
}

func (h Habit) CompletedCount() int {
	return len(h.CompletedDays)
}

// Lesson is a short educational unit from the catalog.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"` // Finanças, Carreira, Soft Skills
	Level       string `json:"level"`    // Iniciante, Intermediário, Avançado
	IsCompleted bool   `json:"isCompleted"`
}

// KVEntry is one persisted slice of application state.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName keeps gorm and the sqlite backend on the same table.
func (KVEntry) TableName() string {
	return "kv_entries"
}
