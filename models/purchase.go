package models

import (
	"math"
	"time"
)

// PaymentMethod is how a purchase was paid
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentPSE        PaymentMethod = "PSE"
	PaymentCash       PaymentMethod = "CASH"
)

// IsValid reports whether m is a supported payment method
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCreditCard || m == PaymentPSE || m == PaymentCash
}

// PaymentStatus is the settlement state of a purchase
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Purchase is a ticket order placed by a user
type Purchase struct {
	ID            int64             `json:"id" db:"id"`
	UserID        int64             `json:"userId" db:"user_id"`
	PurchaseDate  time.Time         `json:"purchaseDate" db:"purchase_date"`
	TotalAmount   float64           `json:"totalAmount" db:"total_amount"`
	PaymentStatus PaymentStatus     `json:"paymentStatus" db:"payment_status"`
	PaymentMethod PaymentMethod     `json:"paymentMethod" db:"payment_method"`
	Details       []*PurchaseDetail `json:"purchaseDetails"`
}

// PurchaseDetail is one line of a purchase
type PurchaseDetail struct {
	ID         int64   `json:"id" db:"id"`
	PurchaseID int64   `json:"purchaseId" db:"purchase_id"`
	FilmID     int64   `json:"filmId" db:"film_id"`
	FilmTitle  string  `json:"filmTitle,omitempty" db:"-"`
	Quantity   int     `json:"quantity" db:"quantity"`
	UnitPrice  float64 `json:"unitPrice" db:"unit_price"`
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// TableName returns the table name for the PurchaseDetail model
func (PurchaseDetail) TableName() string {
	return "purchase_details"
}

// Subtotal returns unit price times quantity
func (d *PurchaseDetail) Subtotal() float64 {
	return d.UnitPrice * float64(d.Quantity)
}

// NewPurchase creates a completed purchase with its total computed from details
func NewPurchase(userID int64, method PaymentMethod, details []*PurchaseDetail) *Purchase {
	p := &Purchase{
		UserID:        userID,
		PurchaseDate:  time.Now().UTC(),
		PaymentStatus: PaymentCompleted,
		PaymentMethod: method,
		Details:       details,
	}
	p.TotalAmount = p.CalculateTotal()
	return p
}

// CalculateTotal sums the detail subtotals, rounded to cents
func (p *Purchase) CalculateTotal() float64 {
	var total float64
	for _, d := range p.Details {
		total += d.Subtotal()
	}
	return math.Round(total*100) / 100
}
