package models

// InsurancePartner describes an extended-warranty insurer shown in the
// partner directory. The catalog is static and curated by hand.
type InsurancePartner struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Coverage string   `json:"coverage"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Contact  string   `json:"contact"`
}
