package types

import "testing"

func TestRecordFromRow(t *testing.T) {
	row := Row{
		"mobile":      "9876543210",
		"alt_mobile":  []byte("9123456789"),
		"name":        "RAVI KUMAR",
		"fname":       "SURESH KUMAR",
		"email":       nil,
		"address":     "12 MG ROAD!!BANGALORE",
		"circle":      "KARNATAKA",
		"operator_id": int64(40413),
	}

	rec := RecordFromRow(row)

	if rec.Mobile != "9876543210" {
		t.Errorf("Mobile = %q, expected %q", rec.Mobile, "9876543210")
	}
	if rec.AltMobile != "9123456789" {
		t.Errorf("AltMobile = %q, expected %q (bytes should convert)", rec.AltMobile, "9123456789")
	}
	if rec.Email != "" {
		t.Errorf("Email = %q, expected empty for NULL column", rec.Email)
	}
	if rec.OperatorID != "40413" {
		t.Errorf("OperatorID = %q, expected %q", rec.OperatorID, "40413")
	}
}

func TestRecordFromRow_MissingColumns(t *testing.T) {
	rec := RecordFromRow(Row{"mobile": "9876543210"})

	if rec.Mobile != "9876543210" {
		t.Errorf("Mobile = %q, expected %q", rec.Mobile, "9876543210")
	}
	if rec.Name != "" || rec.Address != "" || rec.Circle != "" {
		t.Error("missing columns should read as empty strings")
	}
}

func TestFingerprint(t *testing.T) {
	a := Record{Mobile: "9876543210", Name: "RAVI", FatherName: "SURESH", Address: "MG ROAD"}
	b := Record{Mobile: "9876543210", Name: "RAVI", FatherName: "SURESH", Address: "MG ROAD",
		Email: "different@example.com", Circle: "DELHI"}
	c := Record{Mobile: "9876543210", Name: "RAVI", FatherName: "SURESH", Address: "BRIGADE ROAD"}

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("records identical on the four key fields should share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("records differing on address should not share a fingerprint")
	}
}

func TestFingerprintAsMapKey(t *testing.T) {
	seen := map[Fingerprint]bool{}
	recs := []Record{
		{Mobile: "9876543210", Name: "RAVI"},
		{Mobile: "9876543210", Name: "RAVI"},
		{Mobile: "9123456789", Name: "RAVI"},
	}
	for _, r := range recs {
		seen[r.Fingerprint()] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected 2 distinct fingerprints, got %d", len(seen))
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"None", true},
		{"N/A", true},
		{"none", false}, // sentinels are stored with exact casing
		{"n/a", false},
		{"NA", false},
		{"RAVI", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsSentinel(tt.value); got != tt.expected {
				t.Errorf("IsSentinel(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}
