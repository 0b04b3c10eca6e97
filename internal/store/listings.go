package store

import (
	"fmt"

	"github.com/diewo77/go-relief/internal/models"
)

// Listing queries carry no ORDER BY; callers must not rely on row order.

func (c *Conn) ListReliefCenters() ([]models.ReliefCenter, error) {
	rows := []models.ReliefCenter{}
	if err := c.tx.Raw("SELECT * FROM reliefcenters").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reliefcenters: %w", err)
	}
	return rows, nil
}

func (c *Conn) ListVolunteers() ([]models.Volunteer, error) {
	rows := []models.Volunteer{}
	if err := c.tx.Raw("SELECT * FROM volunteers").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	return rows, nil
}

func (c *Conn) ListVictims() ([]models.VictimListing, error) {
	rows := []models.VictimListing{}
	err := c.tx.Raw(`SELECT v.*, r.name AS center_name
		FROM victims v LEFT JOIN reliefcenters r ON v.assigned_center_id = r.id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list victims: %w", err)
	}
	return rows, nil
}

func (c *Conn) ListDonations() ([]models.DonationListing, error) {
	rows := []models.DonationListing{}
	err := c.tx.Raw(`SELECT d.*, r.name AS center_name
		FROM donations d LEFT JOIN reliefcenters r ON d.center_id = r.id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return rows, nil
}

func (c *Conn) ListSupplies() ([]models.SupplyListing, error) {
	rows := []models.SupplyListing{}
	err := c.tx.Raw(`SELECT s.*, r.name AS center_name
		FROM supplies s LEFT JOIN reliefcenters r ON s.center_id = r.id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	return rows, nil
}

func (c *Conn) ListAlerts() ([]models.AlertListing, error) {
	rows := []models.AlertListing{}
	err := c.tx.Raw(`SELECT a.*, r.name AS center_name
		FROM alerts a LEFT JOIN reliefcenters r ON a.center_id = r.id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return rows, nil
}
