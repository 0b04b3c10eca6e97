package store

import "fmt"

// ExportTable is a table name allowed in a bulk export. Values only come from ExportTables.
type ExportTable string

const (
	ExportReliefCenters ExportTable = "reliefcenters"
	ExportVolunteers    ExportTable = "volunteers"
	ExportVictims       ExportTable = "victims"
	ExportDonations     ExportTable = "donations"
	ExportSupplies      ExportTable = "supplies"
)

// ExportTables is the bulk export allow-list. Alerts are not part of it.
var ExportTables = []ExportTable{
	ExportReliefCenters, ExportVolunteers, ExportVictims, ExportDonations, ExportSupplies,
}

// ExportAll reads every row of every allow-listed table. Any failure aborts the
// whole export and no partial result is returned.
func (c *Conn) ExportAll() (map[string][]map[string]any, error) {
	out := make(map[string][]map[string]any, len(ExportTables))
	for _, table := range ExportTables {
		rows := []map[string]any{}
		if err := c.tx.Table(string(table)).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("export %s: %w", table, err)
		}
		out[string(table)] = rows
	}
	return out, nil
}
