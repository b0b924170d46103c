package catalog

import (
	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/shopspring/decimal"
)

func price(cents int64) decimal.Decimal {
	return decimal.New(cents, -2) //nolint:mnd
}

// defaultGames статический набор игр и пакетов. При добавлении новой игры
// достаточно дописать её сюда.
func defaultGames() []domain.Game {
	return []domain.Game{
		{
			ID:   "mobile-legends",
			Name: "Mobile Legends",
			Icon: "🎮",
			Packages: []domain.Package{
				{ID: "ml-100", Quantity: 100, Unit: "diamonds", Price: price(299), Bonus: 0},
				{ID: "ml-250", Quantity: 250, Unit: "diamonds", Price: price(699), Bonus: 5},
				{ID: "ml-500", Quantity: 500, Unit: "diamonds", Price: price(1299), Bonus: 15},
				{ID: "ml-1000", Quantity: 1000, Unit: "diamonds", Price: price(2499), Bonus: 50},
				{ID: "ml-2000", Quantity: 2000, Unit: "diamonds", Price: price(4999), Bonus: 150},
			},
		},
		{
			ID:   "genshin-impact",
			Name: "Genshin Impact",
			Icon: "⚔️",
			Packages: []domain.Package{
				{ID: "gi-60", Quantity: 60, Unit: "crystals", Price: price(99), Bonus: 0},
				{ID: "gi-300", Quantity: 300, Unit: "crystals", Price: price(499), Bonus: 30},
				{ID: "gi-980", Quantity: 980, Unit: "crystals", Price: price(1499), Bonus: 110},
				{ID: "gi-1980", Quantity: 1980, Unit: "crystals", Price: price(2999), Bonus: 260},
				{ID: "gi-3280", Quantity: 3280, Unit: "crystals", Price: price(4999), Bonus: 600},
			},
		},
		{
			ID:   "pubg-mobile",
			Name: "PUBG Mobile",
			Icon: "🔫",
			Packages: []domain.Package{
				{ID: "pubg-60", Quantity: 60, Unit: "uc", Price: price(99), Bonus: 0},
				{ID: "pubg-325", Quantity: 325, Unit: "uc", Price: price(499), Bonus: 25},
				{ID: "pubg-660", Quantity: 660, Unit: "uc", Price: price(999), Bonus: 60},
				{ID: "pubg-1800", Quantity: 1800, Unit: "uc", Price: price(2499), Bonus: 300},
				{ID: "pubg-3850", Quantity: 3850, Unit: "uc", Price: price(4999), Bonus: 850},
			},
		},
		{
			ID:   "valorant",
			Name: "Valorant",
			Icon: "🎯",
			Packages: []domain.Package{
				{ID: "val-475", Quantity: 475, Unit: "vp", Price: price(499), Bonus: 0},
				{ID: "val-1000", Quantity: 1000, Unit: "vp", Price: price(999), Bonus: 50},
				{ID: "val-2050", Quantity: 2050, Unit: "vp", Price: price(1999), Bonus: 150},
				{ID: "val-3650", Quantity: 3650, Unit: "vp", Price: price(3499), Bonus: 350},
				{ID: "val-5350", Quantity: 5350, Unit: "vp", Price: price(4999), Bonus: 600},
			},
		},
	}
}
