package domain

// StoreInfo is the mutable store metadata. It is exposed as plain fields;
// callers assign directly, there are no dedicated setters.
type StoreInfo struct {
	Name            string
	AdminEmail      string
	MaintenanceMode bool
}

// PaymentMethod is a pre-seeded payment option. The collection is fixed;
// only the Enabled flag is mutable.
type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ShippingMethod is a pre-seeded shipping option with a mutable price and
// Enabled flag.
type ShippingMethod struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Enabled bool    `json:"enabled"`
}
