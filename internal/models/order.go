package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LineItem is one priced cart entry captured at checkout time. The slice is
// persisted as a JSON text column, independent of later catalog changes.
type LineItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ItemTotal float64   `json:"item_total"`
}

// Order is an immutable record of a completed checkout.
type Order struct {
	BaseModel
	UserID          *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User            *User      `json:"user,omitempty"`
	CustomerName    string     `gorm:"not null" json:"customer_name"`
	CustomerEmail   string     `gorm:"not null" json:"customer_email"`
	CustomerPhone   string     `gorm:"not null" json:"customer_phone"`
	CustomerAddress string     `gorm:"type:text;not null" json:"customer_address"`
	OrderDate       time.Time  `json:"order_date"`
	OrderTotal      float64    `gorm:"not null" json:"order_total"`
	OrderItems      string     `gorm:"type:text;not null" json:"-"`
}

// Items decodes the persisted line-item snapshot.
func (o *Order) Items() ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(o.OrderItems), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems encodes the line-item snapshot for persistence.
func (o *Order) SetItems(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.OrderItems = string(data)
	return nil
}
