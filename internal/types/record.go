// Package types contains shared types used across multiple packages to avoid import cycles.
package types

// Row is a single query result materialized as column name -> value.
// Column order is irrelevant; the key set is fixed by the users table schema.
type Row map[string]any

// Record is one row of the users table. Every column except mobile may be
// NULL in the dataset, so all fields are plain strings with "" for missing.
type Record struct {
	Mobile     string
	AltMobile  string
	Name       string
	FatherName string
	Email      string
	Address    string
	Circle     string
	OperatorID string
}

// RecordFromRow converts a materialized row into a Record.
// Missing columns read as empty strings; unknown columns are ignored.
func RecordFromRow(row Row) Record {
	return Record{
		Mobile:     ToString(row["mobile"]),
		AltMobile:  ToString(row["alt_mobile"]),
		Name:       ToString(row["name"]),
		FatherName: ToString(row["fname"]),
		Email:      ToString(row["email"]),
		Address:    ToString(row["address"]),
		Circle:     ToString(row["circle"]),
		OperatorID: ToString(row["operator_id"]),
	}
}

// Fingerprint is the content-level dedup key for a Record.
// Field order is fixed: mobile, name, fname, address.
type Fingerprint struct {
	Mobile     string
	Name       string
	FatherName string
	Address    string
}

// Fingerprint returns the dedup key for the record. Two records returned by
// different queries collapse when these four fields are byte-identical.
func (r Record) Fingerprint() Fingerprint {
	return Fingerprint{
		Mobile:     r.Mobile,
		Name:       r.Name,
		FatherName: r.FatherName,
		Address:    r.Address,
	}
}

// IsSentinel reports whether a trimmed field value carries no information.
// The dataset stores the literal strings "None" and "N/A" for absent values.
func IsSentinel(s string) bool {
	switch s {
	case "", "None", "N/A":
		return true
	}
	return false
}
