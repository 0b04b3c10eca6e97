package store

import (
	"fmt"

	"github.com/diewo77/go-relief/internal/models"
)

// InsertDonation stores d as a single row.
func (c *Conn) InsertDonation(d *models.Donation) error {
	if err := c.tx.Create(d).Error; err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}
