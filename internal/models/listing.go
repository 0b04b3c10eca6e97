package models

// Listing rows add the joined relief center name; CenterName is nil when the
// foreign key is unset or dangling.

type VictimListing struct {
	Victim
	CenterName *string `json:"center_name"`
}

type DonationListing struct {
	Donation
	CenterName *string `json:"center_name"`
}

type SupplyListing struct {
	Supply
	CenterName *string `json:"center_name"`
}

type AlertListing struct {
	Alert
	CenterName *string `json:"center_name"`
}

// All returns every model managed by the schema, in dependency order.
func All() []any {
	return []any{
		&User{}, &ReliefCenter{}, &Volunteer{}, &Victim{}, &Donation{}, &Supply{}, &Alert{},
	}
}
