package configsvc_test

import (
	"context"
	"testing"

	"github.com/kopkit/storefront/internal/svc/configsvc"
)

func TestConfigService_Seeds(t *testing.T) {
	t.Parallel()

	svc := configsvc.NewConfigService()

	if got, want := svc.Info.Name, "Kopkit - Koperasi Kita"; got != want {
		t.Errorf("Info.Name = %q, want %q", got, want)
	}

	if svc.Info.MaintenanceMode {
		t.Error("Info.MaintenanceMode = true, want false")
	}

	payment := svc.PaymentMethods()
	if len(payment) != 3 {
		t.Fatalf("PaymentMethods() = %d methods, want 3", len(payment))
	}

	shipping := svc.ShippingMethods()
	if len(shipping) != 3 {
		t.Fatalf("ShippingMethods() = %d methods, want 3", len(shipping))
	}

	for _, m := range payment {
		if !m.Enabled {
			t.Errorf("payment method %q seeded disabled", m.ID)
		}
	}

	prices := map[string]float64{"regular": 10000, "express": 25000, "pickup": 0}
	for _, m := range shipping {
		if want, ok := prices[m.ID]; !ok || m.Price != want {
			t.Errorf("shipping method %q price = %v, want %v", m.ID, m.Price, want)
		}
	}
}

func TestConfigService_TogglePaymentMethod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := configsvc.NewConfigService()

	svc.TogglePaymentMethod(ctx, "qris")

	for _, m := range svc.PaymentMethods() {
		if m.ID == "qris" && m.Enabled {
			t.Error("qris still enabled after toggle")
		}

		if m.ID != "qris" && !m.Enabled {
			t.Errorf("toggle of qris disabled %q", m.ID)
		}
	}

	// Toggling twice restores the original state.
	svc.TogglePaymentMethod(ctx, "qris")

	for _, m := range svc.PaymentMethods() {
		if !m.Enabled {
			t.Errorf("method %q not re-enabled after double toggle", m.ID)
		}
	}

	// Unknown ids change nothing.
	svc.TogglePaymentMethod(ctx, "barter")

	for _, m := range svc.PaymentMethods() {
		if !m.Enabled {
			t.Errorf("unknown-id toggle disabled %q", m.ID)
		}
	}
}

func TestConfigService_ToggleShippingMethod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := configsvc.NewConfigService()

	svc.ToggleShippingMethod(ctx, "express")

	for _, m := range svc.ShippingMethods() {
		if m.ID == "express" && m.Enabled {
			t.Error("express still enabled after toggle")
		}
	}

	svc.ToggleShippingMethod(ctx, "unknown")

	disabled := 0

	for _, m := range svc.ShippingMethods() {
		if !m.Enabled {
			disabled++
		}
	}

	if disabled != 1 {
		t.Errorf("disabled methods = %d, want 1", disabled)
	}
}

func TestConfigService_UpdateShippingPrice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name  string
		id    string
		price float64
		want  map[string]float64
	}{
		{
			name:  "updates matching method",
			id:    "regular",
			price: 12000,
			want:  map[string]float64{"regular": 12000, "express": 25000, "pickup": 0},
		},
		{
			name:  "negative price is stored as given",
			id:    "pickup",
			price: -500,
			want:  map[string]float64{"regular": 10000, "express": 25000, "pickup": -500},
		},
		{
			name:  "unknown id is a no-op",
			id:    "teleport",
			price: 1,
			want:  map[string]float64{"regular": 10000, "express": 25000, "pickup": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := configsvc.NewConfigService()
			svc.UpdateShippingPrice(ctx, tt.id, tt.price)

			for _, m := range svc.ShippingMethods() {
				if m.Price != tt.want[m.ID] {
					t.Errorf("method %q price = %v, want %v", m.ID, m.Price, tt.want[m.ID])
				}
			}
		})
	}
}
