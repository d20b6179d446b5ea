package expense

import "time"

type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	Category    string    `json:"category"`
	SpentAt     time.Time `json:"spentAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateExpenseInput struct {
	Description string     `json:"description"`
	Amount      int        `json:"amount"`
	Category    string     `json:"category"`
	SpentAt     *time.Time `json:"spentAt"`
}
