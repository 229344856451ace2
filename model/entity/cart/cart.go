package cart

import (
	"time"

	"gorm.io/datatypes"
)

// Line represents cart_lines: one locally managed cart line for a browser
// session. Only native catalog lines live here; Shopify lines live in the
// platform's checkout session and are referenced through CheckoutRef.
type Line struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	SessionID string         `gorm:"column:session_id;type:varchar(64);not null;index" json:"session_id"`
	ProductID string         `gorm:"column:product_id;type:varchar(128);not null" json:"product_id"`
	Name      string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price     string         `gorm:"column:price;type:varchar(32);not null" json:"price"`
	Image     string         `gorm:"column:image;type:varchar(512)" json:"image"`
	Quantity  int            `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Snapshot  datatypes.JSON `gorm:"column:snapshot" json:"snapshot,omitempty"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Line) TableName() string {
	return "cart_lines"
}

// CheckoutRef represents checkout_refs: the platform checkout session a
// browser session is attached to. One per session.
type CheckoutRef struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	SessionID  string    `gorm:"column:session_id;type:varchar(64);not null;uniqueIndex" json:"session_id"`
	CheckoutID string    `gorm:"column:checkout_id;type:varchar(255);not null" json:"checkout_id"`
	WebURL     string    `gorm:"column:web_url;type:varchar(512)" json:"web_url"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CheckoutRef) TableName() string {
	return "checkout_refs"
}
