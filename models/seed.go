package models

// DateLayout is the calendar-day format used for habit completions.
const DateLayout = "2006-01-02"

// TimestampLayout matches the millisecond ISO-8601 form stored for transactions.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DefaultProfile is the profile of a fresh install.
func DefaultProfile() UserProfile {
	return UserProfile{Name: "Adalberto", Level: 1, XP: 120, Streak: 3}
}

// DefaultHabits returns the two seed habits.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "h1", Title: "Registrar gastos do dia", CompletedDays: []string{}, Frequency: Diaria},
		{ID: "h2", Title: "Ler 10 min de Finanças", CompletedDays: []string{}, Frequency: Diaria},
	}
}

// DefaultLessons returns the lesson catalog with nothing completed.
func DefaultLessons() []Lesson {
	return []Lesson{
		{
			ID:          "1",
			Title:       "O Primeiro Passo: Orçamento",
			Description: "Aprenda a controlar cada Kwanza que entra e sai.",
			Content:     "O orçamento é a base de toda riqueza. Sem saber para onde seu dinheiro vai, você não tem controle sobre seu futuro. Em Angola, onde a inflação é um desafio, o controle rigoroso é ainda mais vital.",
			Category:    "Finanças",
			Level:       "Iniciante",
		},
		{
			ID:          "2",
			Title:       "Reserva de Emergência",
			Description: "Como se proteger de imprevistos em Angola.",
			Content:     "Sua reserva deve cobrir pelo menos 6 meses de seus gastos fixos. Comece pequeno, guardando 10% do que ganha.",
			Category:    "Finanças",
			Level:       "Iniciante",
		},
		{
			ID:          "3",
			Title:       "Investindo no Exterior",
			Description: "Diversificando além do Kwanza.",
			Content:     "Aprenda como começar a investir em moedas fortes para proteger seu poder de compra a longo prazo.",
			Category:    "Finanças",
			Level:       "Avançado",
		},
	}
}
