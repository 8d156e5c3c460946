package types

import "time"

// Profile is the consolidated output of a deep search: per-field deduplicated
// lists in first-seen order plus summary counts.
type Profile struct {
	Seed         string   `json:"seed"`
	Found        bool     `json:"found"`
	TotalRecords int      `json:"total_records"`
	TotalPhones  int      `json:"total_phones"`
	Phones       []string `json:"phones"`
	Names        []string `json:"names"`
	FatherNames  []string `json:"father_names"`
	Emails       []string `json:"emails"`
	Addresses    []string `json:"addresses"`
	Circles      []string `json:"circles"`
	OperatorIDs  []string `json:"operator_ids"`
}

// SearchStats contains statistics about a deep search traversal.
type SearchStats struct {
	QueriesRun   int           // Numbers looked up (size of the visited set)
	RecordsFound int           // Distinct records retained after dedup
	Levels       int           // Depth of BFS traversal
	Duration     time.Duration // Time taken for the traversal
}
