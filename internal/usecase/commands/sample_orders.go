package commands

import (
	"time"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"

	"github.com/shopspring/decimal"
)

// SampleOrders returns demonstration orders around today plus a fixed June 2025 set.
func SampleOrders(now time.Time) []order.Draft {
	today := caldate.FromTime(now)
	day := func(offset int) caldate.Date { return today.AddDays(offset) }
	brl := decimal.RequireFromString

	cake := func(date caldate.Date, customer, value string, d order.CakeDetails) order.Draft {
		return order.Draft{
			Kind:   order.KindCake,
			Common: order.Common{Customer: customer, Date: date, Value: brl(value)},
			Cake:   &d,
		}
	}
	sweet := func(date caldate.Date, customer, value string, d order.SweetDetails) order.Draft {
		return order.Draft{
			Kind:   order.KindSweet,
			Common: order.Common{Customer: customer, Date: date, Value: brl(value)},
			Sweet:  &d,
		}
	}
	wedding := func(date caldate.Date, customer, value string, d order.WeddingDetails) order.Draft {
		return order.Draft{
			Kind:    order.KindWedding,
			Common:  order.Common{Customer: customer, Date: date, Value: brl(value)},
			Wedding: &d,
		}
	}

	return []order.Draft{
		cake(day(0), "Débora", "45.00", order.CakeDetails{
			Size: order.SizeP, Flavor: "Chocolate", Filling: "Brigadeiro",
			Finishing: "Chocolate com granulado", NeedsTopper: true, PickupTime: "21:00",
		}),
		sweet(day(0), "Maria Silva", "25.00", order.SweetDetails{SweetType: "Brigadeiro", Quantity: 50, Flavor: "Tradicional"}),
		wedding(day(0), "João e Ana", "80.00", order.WeddingDetails{Quantity: 100, Flavor: "Doce de Leite"}),

		cake("2025-06-05", "Festa da Maria", "65.00", order.CakeDetails{
			Size: order.SizeM, Flavor: "Morango", Filling: "Creme de morango",
			Finishing: "Chantilly com morangos", PickupTime: "18:00",
		}),
		sweet("2025-06-10", "Aniversário João", "18.00", order.SweetDetails{SweetType: "Beijinho", Quantity: 30, Flavor: "Coco"}),
		cake("2025-06-15", "Festa Corporativa", "85.00", order.CakeDetails{
			Size: order.SizeG, Flavor: "Chocolate", Filling: "Brigadeiro",
			Finishing: "Ganache", NeedsTopper: true, PickupTime: "15:30",
		}),
		wedding("2025-06-20", "Casamento Ana & Pedro", "120.00", order.WeddingDetails{Quantity: 150, Flavor: "Brigadeiro"}),
		cake("2025-06-25", "Festa de Formatura", "95.00", order.CakeDetails{
			Size: order.SizeGG, Flavor: "Red Velvet", Filling: "Cream cheese",
			Finishing: "Pasta americana", PickupTime: "19:00",
		}),

		cake(day(-1), "Carlos", "65.00", order.CakeDetails{
			Size: order.SizeM, Flavor: "Morango", Filling: "Creme de morango",
			Finishing: "Chantilly com morangos", PickupTime: "18:00",
		}),
		cake(day(-1), "Festa da Lúcia", "85.00", order.CakeDetails{
			Size: order.SizeG, Flavor: "Baunilha", Filling: "Brigadeiro branco",
			Finishing: "Pasta americana rosa", NeedsTopper: true, PickupTime: "15:30",
		}),
		sweet(day(-2), "Festa Infantil", "18.00", order.SweetDetails{SweetType: "Beijinho", Quantity: 30, Flavor: "Coco"}),
		cake(day(1), "Casamento Silva", "120.00", order.CakeDetails{
			Size: order.SizeSheet70, Flavor: "Chocolate", Filling: "Mousse de chocolate",
			Finishing: "Ganache", PickupTime: "19:00",
		}),
		wedding(day(1), "Casamento Silva", "150.00", order.WeddingDetails{Quantity: 200, Flavor: "Brigadeiro"}),
		cake(day(3), "Aniversário Pedro", "40.00", order.CakeDetails{
			Size: order.SizePP, Flavor: "Red Velvet", Filling: "Cream cheese",
			Finishing: "Glacê real", NeedsTopper: true, PickupTime: "16:00",
		}),
		sweet(day(3), "Aniversário Pedro", "30.00", order.SweetDetails{SweetType: "Trufa", Quantity: 25, Flavor: "Chocolate Branco"}),
	}
}
