package models

// DonationTypeMoney is the only donation type that carries an amount instead of a quantity.
const DonationTypeMoney = "Money"

// Donation records a gift to a relief center. Exactly one of Amount and Quantity is set:
// Amount for money, Quantity for everything else.
type Donation struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	DonorName string   `gorm:"size:255" json:"donor_name"`
	Type      string   `gorm:"size:100;not null" json:"type"`
	Amount    *float64 `json:"amount"`
	ItemName  *string  `gorm:"size:255" json:"item_name"`
	Quantity  *int     `json:"quantity"`
	CenterID  *uint    `gorm:"index" json:"center_id"`
}

func (Donation) TableName() string { return "donations" }

// IsMoney reports whether the donation is monetary.
func (d *Donation) IsMoney() bool { return d.Type == DonationTypeMoney }
