// Package services holds form-level business rules shared by the handlers.
package services

import (
	"net/http"
	"sort"
	"strings"

	"github.com/diewo77/go-relief/internal/models"
	"github.com/diewo77/go-relief/validation"
)

// DonationForm is the raw donation form as submitted.
type DonationForm struct {
	DonorName string
	Type      string
	Amount    string
	ItemName  string
	Quantity  string
	CenterID  string
}

// DonationFormFromRequest reads the donation fields from a parsed form.
func DonationFormFromRequest(r *http.Request) DonationForm {
	return DonationForm{
		DonorName: r.FormValue("donor_name"),
		Type:      r.FormValue("type"),
		Amount:    r.FormValue("amount"),
		ItemName:  r.FormValue("item_name"),
		Quantity:  r.FormValue("quantity"),
		CenterID:  r.FormValue("center_id"),
	}
}

// Defaults applied when the relevant field is left blank.
const (
	DefaultMoneyAmount  = 0.0
	DefaultItemQuantity = 1
)

// ResolveDonation coerces the form into a donation row. Money donations carry an
// amount and no quantity; every other type, blank included, carries a quantity
// and no amount. Type is kept as submitted and compared exactly.
// When violations is non-empty the donation is nil and nothing should be stored.
func ResolveDonation(f DonationForm) (*models.Donation, validation.Violations) {
	v := validation.Violations{}
	d := &models.Donation{
		DonorName: strings.TrimSpace(f.DonorName),
		Type:      f.Type,
		ItemName:  validation.OptionalString(f.ItemName),
		CenterID:  validation.OptionalID("center_id", f.CenterID, v),
	}
	if d.IsMoney() {
		amount := validation.OptionalFloat("amount", f.Amount, DefaultMoneyAmount, v)
		d.Amount = &amount
	} else {
		qty := validation.OptionalInt("quantity", f.Quantity, DefaultItemQuantity, v)
		d.Quantity = &qty
	}

	if !v.Empty() {
		return nil, v
	}
	return d, nil
}

var violationNotices = map[string]string{
	"amount":    "invalid_amount",
	"quantity":  "invalid_quantity",
	"center_id": "invalid_center",
}

// ViolationNotices maps donation violations to notice codes in a stable order.
func ViolationNotices(v validation.Violations) []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		code, ok := violationNotices[f]
		if !ok {
			code = v[f]
		}
		codes = append(codes, code)
	}
	return codes
}
