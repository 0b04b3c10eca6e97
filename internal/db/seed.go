package db

import (
	"errors"
	"fmt"

	"github.com/diewo77/go-relief/internal/models"
	"gorm.io/gorm"
)

// baseCenters are the development relief centers created by Seed.
var baseCenters = []models.ReliefCenter{
	{Name: "North Shelter", Location: "12 Harbor Road", Capacity: 200, Contact: "555-0101"},
	{Name: "Central Gym", Location: "4 Main Street", Capacity: 350, Contact: "555-0102"},
	{Name: "East Field Hospital", Location: "88 River Lane", Capacity: 120, Contact: "555-0103"},
}

// Seed inserts the baseline relief centers. Running it twice creates nothing new.
// It returns the number of centers created.
func Seed(conn *gorm.DB) (int, error) {
	created := 0
	for _, c := range baseCenters {
		var existing models.ReliefCenter
		err := conn.Where("name = ?", c.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("lookup center %q: %w", c.Name, err)
		}
		center := c
		if err := conn.Create(&center).Error; err != nil {
			return created, fmt.Errorf("create center %q: %w", c.Name, err)
		}
		created++
	}
	return created, nil
}
