package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	Income  Types = "income"
	Expense Types = "expense"
)

func (t Types) Valid() bool {
	return t == Income || t == Expense
}

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategorySalary,
	CategoryInvestment,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a signed financial event. Amount is a magnitude; Type decides
// whether it counts as inflow or outflow. UserId is set at creation and never
// reassigned.
type Transaction struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_user_id;index:idx_transactions_user_date,priority:1;not null" json:"userId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    Category  `gorm:"type:varchar(30);not null;index:idx_transactions_category" json:"category"`
	Date        time.Time `gorm:"not null;index:idx_transactions_user_date,priority:2" json:"date"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Type        Types     `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Update carries a partial change set. Nil fields are left untouched; Id and
// UserId are never updatable.
type Update struct {
	Title       *string
	Amount      *float64
	Category    *Category
	Date        *time.Time
	Description *string
	Type        *Types
}
