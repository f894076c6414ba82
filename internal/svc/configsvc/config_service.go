package configsvc

import (
	"context"

	"github.com/kopkit/storefront/internal/domain"
	"github.com/kopkit/storefront/internal/infra/logging"
)

// ConfigService holds store-wide configuration: metadata plus the fixed
// payment and shipping method collections. Methods cannot be created or
// deleted, only toggled (and priced, for shipping). Nothing here is
// persisted: configuration resets to the seed values with every session.
type ConfigService struct {
	// Info is the mutable store metadata; callers assign its fields directly.
	Info domain.StoreInfo

	Log logging.Logger

	payment  []domain.PaymentMethod
	shipping []domain.ShippingMethod
}

// NewConfigService creates a ConfigService seeded with the store defaults.
func NewConfigService() *ConfigService {
	return &ConfigService{
		Info: domain.StoreInfo{
			Name:            "Kopkit - Koperasi Kita",
			AdminEmail:      "admin@kopkit.com",
			MaintenanceMode: false,
		},
		Log: logging.GetLogger("svc.configsvc.config_service"),
		payment: []domain.PaymentMethod{
			{ID: "cash", Name: "Cash on Delivery (COD)", Enabled: true},
			{ID: "transfer", Name: "Bank Transfer (BCA)", Enabled: true},
			{ID: "qris", Name: "QRIS", Enabled: true},
		},
		shipping: []domain.ShippingMethod{
			{ID: "regular", Name: "Regular (JNE/J&T)", Price: 10000, Enabled: true},
			{ID: "express", Name: "Instant (Gojek/Grab)", Price: 25000, Enabled: true},
			{ID: "pickup", Name: "Ambil Sendiri", Price: 0, Enabled: true},
		},
	}
}

// PaymentMethods returns a copy of the payment method collection.
func (s *ConfigService) PaymentMethods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(s.payment))
	copy(out, s.payment)

	return out
}

// ShippingMethods returns a copy of the shipping method collection.
func (s *ConfigService) ShippingMethods() []domain.ShippingMethod {
	out := make([]domain.ShippingMethod, len(s.shipping))
	copy(out, s.shipping)

	return out
}

// TogglePaymentMethod flips the enabled flag of the matching payment method.
// Unknown ids are a no-op.
func (s *ConfigService) TogglePaymentMethod(ctx context.Context, id string) {
	for i := range s.payment {
		if s.payment[i].ID == id {
			s.payment[i].Enabled = !s.payment[i].Enabled

			s.Log.DebugContext(ctx, "payment method toggled",
				logging.Group("method", "id", id, "enabled", s.payment[i].Enabled))

			return
		}
	}
}

// ToggleShippingMethod flips the enabled flag of the matching shipping
// method. Unknown ids are a no-op.
func (s *ConfigService) ToggleShippingMethod(ctx context.Context, id string) {
	for i := range s.shipping {
		if s.shipping[i].ID == id {
			s.shipping[i].Enabled = !s.shipping[i].Enabled

			s.Log.DebugContext(ctx, "shipping method toggled",
				logging.Group("method", "id", id, "enabled", s.shipping[i].Enabled))

			return
		}
	}
}

// UpdateShippingPrice sets the price of the matching shipping method.
// Unknown ids are a no-op. The price is not validated; a negative value is
// stored as given.
func (s *ConfigService) UpdateShippingPrice(ctx context.Context, id string, price float64) {
	for i := range s.shipping {
		if s.shipping[i].ID == id {
			s.shipping[i].Price = price

			s.Log.DebugContext(ctx, "shipping price updated",
				logging.Group("method", "id", id, "price", price))

			return
		}
	}
}
