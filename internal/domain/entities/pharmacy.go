package entities

import "time"

// StockLevel is the availability of a medication at a pharmacy
type StockLevel string

const (
	StockLevelInStock    StockLevel = "in_stock"
	StockLevelLowStock   StockLevel = "low_stock"
	StockLevelOutOfStock StockLevel = "out_of_stock"
)

// Valid reports whether s is a known stock level
func (s StockLevel) Valid() bool {
	switch s {
	case StockLevelInStock, StockLevelLowStock, StockLevelOutOfStock:
		return true
	}
	return false
}

// Pharmacy is a dispensing location
type Pharmacy struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	ZipCode   string    `json:"zipCode" db:"zip_code"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PharmacyStock is the stock level of one medication at one pharmacy
type PharmacyStock struct {
	PharmacyID   string     `json:"pharmacyId" db:"pharmacy_id"`
	MedicationID string     `json:"medicationId" db:"medication_id"`
	StockLevel   StockLevel `json:"stockLevel" db:"stock_level"`
	LastUpdated  time.Time  `json:"lastUpdated" db:"last_updated"`
}

// NearbyPharmacy is a pharmacy with its distance from the query point and its stock
type NearbyPharmacy struct {
	Pharmacy
	DistanceKm float64         `json:"distance"`
	Stock      []PharmacyStock `json:"stock"`
}
