// Package state owns the application's four state slices. Its methods are the
// only write surface: each mutation runs under one lock, rewards the profile
// through the gamification rules and persists a full snapshot.
package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"prospera-go-be/advisor"
	"prospera-go-be/database"
	appErrors "prospera-go-be/errors"
	"prospera-go-be/gamification"
	"prospera-go-be/models"
)

// Advisor produces a tip from recent transactions. It never fails.
type Advisor interface {
	Advise(ctx context.Context, txs []models.Transaction) string
}

// AddForm is a pending request to open the add-transaction form with a
// preset type.
type AddForm struct {
	Type models.TransactionType `json:"type"`
}

// Snapshot is a deep copy of the model, safe to hand to the view.
type Snapshot struct {
	Profile       models.UserProfile   `json:"profile"`
	Transactions  []models.Transaction `json:"transactions"`
	Lessons       []models.Lesson      `json:"lessons"`
	Habits        []models.Habit       `json:"habits"`
	Advice        string               `json:"advice"`
	LoadingAdvice bool                 `json:"loadingAdvice"`
	PendingForm   *AddForm             `json:"pendingForm,omitempty"`
}

// Model holds the in-memory state.
type Model struct {
	mu           sync.Mutex
	store        *database.Store
	advisor      Advisor
	now          func() time.Time
	newID        func() string
	profile      models.UserProfile
	transactions []models.Transaction
	lessons      []models.Lesson
	habits       []models.Habit
	pendingForm  *AddForm

	advice        atomic.Value // string
	adviceInFlight atomic.Int32
}

// Load builds a Model from store. Each slice falls back to its default on
// its own when absent or malformed.
func Load(ctx context.Context, store *database.Store, advisor Advisor) *Model {
	m := &Model{
		store:   store,
		advisor: advisor,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	m.advice.Store("")

	m.profile = models.DefaultProfile()
	if loadSlice(ctx, store, database.KeyProfile, &m.profile) {
		if m.profile.XP < 0 || m.profile.Streak < 0 {
			log.Printf("Stored profile out of range (xp=%d streak=%d), using default", m.profile.XP, m.profile.Streak)
			m.profile = models.DefaultProfile()
		}
		m.profile = gamification.Normalize(m.profile)
	} else {
		m.profile = models.DefaultProfile()
	}

	if !loadSlice(ctx, store, database.KeyTransactions, &m.transactions) {
		m.transactions = []models.Transaction{}
	}
	if !loadSlice(ctx, store, database.KeyLessons, &m.lessons) {
		m.lessons = models.DefaultLessons()
	}
	if !loadSlice(ctx, store, database.KeyHabits, &m.habits) {
		m.habits = models.DefaultHabits()
	}
	for i := range m.habits {
		if m.habits[i].CompletedDays == nil {
			m.habits[i].CompletedDays = []string{}
		}
	}
	return m
}

func loadSlice(ctx context.Context, store *database.Store, key string, dst any) bool {
	if store == nil {
		return false
	}
	ok, err := store.Load(ctx, key, dst)
	if err != nil {
		log.Printf("Falling back to default for %s: %v", key, err)
		return false
	}
	return ok
}

// persist writes all four slices. Write failures leave the model running in
// memory only. Callers hold m.mu.
func (m *Model) persist(ctx context.Context) {
	if m.store == nil {
		return
	}
	err := errors.Join(
		m.store.Save(ctx, database.KeyProfile, m.profile),
		m.store.Save(ctx, database.KeyTransactions, m.transactions),
		m.store.Save(ctx, database.KeyLessons, m.lessons),
		m.store.Save(ctx, database.KeyHabits, m.habits),
	)
	if err != nil {
		log.Printf("Persisting state failed, continuing in memory: %v", err)
	}
}

// AddTransaction validates draft, assigns it an id and prepends it.
func (m *Model) AddTransaction(ctx context.Context, draft models.TransactionDraft) (models.Transaction, error) {
	t, err := m.buildTransaction(draft)
	if err != nil {
		return models.Transaction{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.uniqueTransactionID()
	txs := make([]models.Transaction, 0, len(m.transactions)+1)
	txs = append(txs, t)
	m.transactions = append(txs, m.transactions...)
	m.pendingForm = nil
	m.profile = gamification.Apply(m.profile, gamification.TransactionAdded)
	m.persist(ctx)
	return t, nil
}

func (m *Model) buildTransaction(draft models.TransactionDraft) (models.Transaction, error) {
	if !draft.Type.Valid() {
		return models.Transaction{}, appErrors.ErrInvalidType
	}
	if !draft.Category.Valid() {
		return models.Transaction{}, appErrors.ErrInvalidCategory
	}
	if math.IsNaN(draft.Amount) || math.IsInf(draft.Amount, 0) || draft.Amount < 0 {
		return models.Transaction{}, appErrors.ErrInvalidAmount
	}
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return models.Transaction{}, appErrors.ErrEmptyDescription
	}

	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = m.now().UTC().Format(models.TimestampLayout)
	} else if _, err := time.Parse(time.RFC3339, date); err != nil {
		return models.Transaction{}, appErrors.NewValidationError(fmt.Sprintf("date %q is not an ISO-8601 timestamp", date))
	}

	return models.Transaction{
		Type:        draft.Type,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: description,
		Date:        date,
	}, nil
}

func (m *Model) uniqueTransactionID() string {
	for {
		id := m.newID()
		taken := false
		for _, t := range m.transactions {
			if t.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func (m *Model) uniqueHabitID() string {
	for {
		id := m.newID()
		taken := false
		for _, h := range m.habits {
			if h.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// CompleteLesson marks lesson id completed and awards its XP once. It
// reports whether anything changed; unknown or already completed lessons are
// left alone.
func (m *Model) CompleteLesson(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, l := range m.lessons {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || m.lessons[idx].IsCompleted {
		return false
	}

	lessons := make([]models.Lesson, len(m.lessons))
	copy(lessons, m.lessons)
	lessons[idx].IsCompleted = true
	m.lessons = lessons
	m.profile = gamification.Apply(m.profile, gamification.LessonCompleted)
	m.persist(ctx)
	return true
}

// ToggleHabit flips date in habit id's completed days. Every toggle is
// rewarded, including un-completing a day. Unknown habits are a no-op and
// report false.
func (m *Model) ToggleHabit(ctx context.Context, id, date string) (bool, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return false, appErrors.NewValidationError(fmt.Sprintf("date %q is not in YYYY-MM-DD form", date))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, h := range m.habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	habit := m.habits[idx]
	days := make([]string, 0, len(habit.CompletedDays)+1)
	if habit.CompletedOn(date) {
		for _, d := range habit.CompletedDays {
			if d != date {
				days = append(days, d)
			}
		}
	} else {
		days = append(days, habit.CompletedDays...)
		days = append(days, date)
	}
	habit.CompletedDays = days

	habits := make([]models.Habit, len(m.habits))
	copy(habits, m.habits)
	habits[idx] = habit
	m.habits = habits
	m.profile = gamification.Apply(m.profile, gamification.HabitToggled)
	m.persist(ctx)
	return true, nil
}

// AddHabit prepends a new daily habit.
func (m *Model) AddHabit(ctx context.Context, title string) (models.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Habit{}, appErrors.ErrEmptyHabitTitle
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	h := models.Habit{
		ID:            m.uniqueHabitID(),
		Title:         title,
		CompletedDays: []string{},
		Frequency:     models.Diaria,
	}
	habits := make([]models.Habit, 0, len(m.habits)+1)
	habits = append(habits, h)
	m.habits = append(habits, m.habits...)
	m.persist(ctx)
	return h, nil
}

// RequestAddForm records a request to open the add form preset to t.
func (m *Model) RequestAddForm(t models.TransactionType) error {
	if !t.Valid() {
		return appErrors.ErrInvalidType
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingForm = &AddForm{Type: t}
	return nil
}

func (m *Model) ClearAddForm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingForm = nil
}

// PendingAddForm returns the outstanding add-form request, if any.
func (m *Model) PendingAddForm() (AddForm, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pendingForm == nil {
		return AddForm{}, false
	}
	return *m.pendingForm, true
}

// RequestAdvice asks the advisor for a tip on the current transactions.
// LoadingAdvice reports true while any request is outstanding.
func (m *Model) RequestAdvice(ctx context.Context) string {
	m.adviceInFlight.Add(1)
	defer m.adviceInFlight.Add(-1)

	m.mu.Lock()
	txs := cloneTransactions(m.transactions)
	m.mu.Unlock()

	tip := advisor.FailureFallback
	if m.advisor != nil {
		tip = m.advisor.Advise(ctx, txs)
	}
	m.advice.Store(tip)
	return tip
}

func (m *Model) LoadingAdvice() bool {
	return m.adviceInFlight.Load() > 0
}

// Advice returns the last tip received, or "" if none was requested yet.
func (m *Model) Advice() string {
	return m.advice.Load().(string)
}

// Snapshot returns a deep copy of the current state.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Profile:       m.profile,
		Transactions:  cloneTransactions(m.transactions),
		Lessons:       append([]models.Lesson{}, m.lessons...),
		Habits:        cloneHabits(m.habits),
		Advice:        m.Advice(),
		LoadingAdvice: m.LoadingAdvice(),
	}
	if m.pendingForm != nil {
		form := *m.pendingForm
		s.PendingForm = &form
	}
	return s
}

// Profile returns the current profile.
func (m *Model) Profile() models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Lesson looks up a lesson by id.
func (m *Model) Lesson(id string) (models.Lesson, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lessons {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lesson{}, false
}

// Habit looks up a habit by id.
func (m *Model) Habit(id string) (models.Habit, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.habits {
		if h.ID == id {
			h.CompletedDays = append([]string{}, h.CompletedDays...)
			return h, true
		}
	}
	return models.Habit{}, false
}

func cloneTransactions(txs []models.Transaction) []models.Transaction {
	return append([]models.Transaction{}, txs...)
}

func cloneHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	for i, h := range habits {
		h.CompletedDays = append([]string{}, h.CompletedDays...)
		out[i] = h
	}
	return out
}
