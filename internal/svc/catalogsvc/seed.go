package catalogsvc

import "github.com/kopkit/storefront/internal/domain"

// seedCategories is the fixed category list; CategoryAll is the filter
// default and matches everything.
func seedCategories() []string {
	return []string{domain.CategoryAll, "Makanan", "Minuman", "ATK", "Seragam"}
}

// seedProducts is the starter catalog the store ships with.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Nasi Goreng Spesial",
			Price:       15000,
			Category:    "Makanan",
			Description: "Nasi goreng dengan telur, ayam, dan kerupuk.",
			Image:       "https://placehold.co/400x400/orange/white?text=Nasi+Goreng",
		},
		{
			ID:          2,
			Name:        "Es Teh Manis",
			Price:       3000,
			Category:    "Minuman",
			Description: "Es teh manis segar penghilang dahaga.",
			Image:       "https://placehold.co/400x400/brown/white?text=Es+Teh",
		},
		{
			ID:          3,
			Name:        "Pensil 2B",
			Price:       2000,
			Category:    "ATK",
			Description: "Pensil 2B berkualitas tinggi untuk ujian.",
			Image:       "https://placehold.co/400x400/gray/white?text=Pensil+2B",
		},
		{
			ID:          4,
			Name:        "Buku Tulis 58 Lembar",
			Price:       4000,
			Category:    "ATK",
			Description: "Buku tulis sidu 58 lembar.",
			Image:       "https://placehold.co/400x400/blue/white?text=Buku+Tulis",
		},
		{
			ID:          5,
			Name:        "Kopi Hitam",
			Price:       5000,
			Category:    "Minuman",
			Description: "Kopi hitam kapal api.",
			Image:       "https://placehold.co/400x400/black/white?text=Kopi",
		},
		{
			ID:          6,
			Name:        "Roti Bakar",
			Price:       12000,
			Category:    "Makanan",
			Description: "Roti bakar coklat keju.",
			Image:       "https://placehold.co/400x400/yellow/white?text=Roti+Bakar",
		},
		{
			ID:          7,
			Name:        "Seragam Batik",
			Price:       85000,
			Category:    "Seragam",
			Description: "Seragam batik identitas koperasi.",
			Image:       "https://placehold.co/400x400/purple/white?text=Batik",
		},
	}
}
