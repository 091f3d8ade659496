package response

import (
	"encoding/json"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/domain/summary"
	"bakery-orders/internal/pkg/money"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PickupTimeResponse struct {
	Time     string `json:"time"`
	Customer string `json:"customer"`
	Details  string `json:"details"`
}

type DayBreakdownResponse struct {
	Date        string      `json:"date"`
	TotalOrders int         `json:"totalOrders"`
	TotalValue  json.Number `json:"totalValue" swaggertype:"number"`
	Cakes       int         `json:"cakes"`
	Sweets      int         `json:"sweets"`
	Weddings    int         `json:"weddings"`
}

type DailySummaryResponse struct {
	Date          string               `json:"date"`
	CakesBySize   map[string]int       `json:"cakesBySize"`
	TotalSweets   int                  `json:"totalSweets"`
	TotalWeddings int                  `json:"totalWeddings"`
	PickupTimes   []PickupTimeResponse `json:"pickupTimes"`
	TotalOrders   int                  `json:"totalOrders"`
}

type PeriodSummaryResponse struct {
	Start          string                 `json:"start"`
	End            string                 `json:"end"`
	CakesBySize    map[string]int         `json:"cakesBySize"`
	TotalSweets    int                    `json:"totalSweets"`
	TotalWeddings  int                    `json:"totalWeddings"`
	TotalValue     json.Number            `json:"totalValue" swaggertype:"number"`
	TotalOrders    int                    `json:"totalOrders"`
	DailyBreakdown []DayBreakdownResponse `json:"dailyBreakdown"`

	AverageTicket    json.Number `json:"averageTicket" swaggertype:"number"`
	ItemsPerOrder    float64     `json:"itemsPerOrder"`
	AverageCakeValue json.Number `json:"averageCakeValue" swaggertype:"number"`
}

type MonthlySummaryResponse struct {
	Year          int         `json:"year"`
	Month         int         `json:"month"`
	TotalValue    json.Number `json:"totalValue" swaggertype:"number"`
	TotalCakes    int         `json:"totalCakes"`
	TotalSweets   int         `json:"totalSweets"`
	TotalWeddings int         `json:"totalWeddings"`
	TotalOrders   int         `json:"totalOrders"`
}

// copyOptions teaches copier the domain value types that have a JSON-friendly form.
var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: json.Number(""),
			Fn: func(src any) (any, error) {
				return money.Number(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: caldate.Date(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(caldate.Date).String(), nil
			},
		},
		{
			SrcType: order.PickupTime(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(order.PickupTime).String(), nil
			},
		},
	},
}

func FromDailySummary(s summary.DailySummary) (*DailySummaryResponse, error) {
	res := &DailySummaryResponse{}
	if err := copier.CopyWithOption(res, &s, copyOptions); err != nil {
		return nil, err
	}
	res.CakesBySize = cakeCounts(s.CakesBySize)
	if res.PickupTimes == nil {
		res.PickupTimes = []PickupTimeResponse{}
	}
	return res, nil
}

func FromPeriodSummary(s summary.PeriodSummary) (*PeriodSummaryResponse, error) {
	res := &PeriodSummaryResponse{}
	if err := copier.CopyWithOption(res, &s, copyOptions); err != nil {
		return nil, err
	}
	res.CakesBySize = cakeCounts(s.CakesBySize)
	if res.DailyBreakdown == nil {
		res.DailyBreakdown = []DayBreakdownResponse{}
	}
	return res, nil
}

func FromMonthlySummary(s summary.MonthlySummary) (*MonthlySummaryResponse, error) {
	res := &MonthlySummaryResponse{}
	if err := copier.CopyWithOption(res, &s, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}

func cakeCounts(bySize map[order.CakeSize]int) map[string]int {
	out := make(map[string]int, len(bySize))
	for size, n := range bySize {
		if n > 0 {
			out[size.String()] = n
		}
	}
	return out
}
