// Package billing implements the partner revenue split and the
// payment-cycle aggregation behind the e-bill workflow.
package billing

import (
	"time"

	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/shopspring/decimal"
)

// Platform deduction rates: 30% GP retained by the operator and 3%
// withholding tax, leaving 67% payable to the partner.
var (
	GPRate  = decimal.NewFromFloat(0.30)
	TaxRate = decimal.NewFromFloat(0.03)
)

// FinancialRecord is the revenue split of a gross amount. It is derived
// on demand and never stored.
type FinancialRecord struct {
	Gross decimal.Decimal
	GP    decimal.Decimal
	Tax   decimal.Decimal
	Net   decimal.Decimal
}

// Calculate splits a gross amount into the platform deduction, the
// withholding tax, and the net payable. GP + Tax + Net always equals
// Gross; no rounding is applied here, display formatting is the
// caller's concern.
func Calculate(gross decimal.Decimal) FinancialRecord {
	gp := gross.Mul(GPRate)
	tax := gross.Mul(TaxRate)
	return FinancialRecord{
		Gross: gross,
		GP:    gp,
		Tax:   tax,
		Net:   gross.Sub(gp).Sub(tax),
	}
}

// Invoice is the billing aggregate for one payment cycle.
type Invoice struct {
	Cycle      string
	Month      int // 0-11, meaningful only for the monthly cycle
	Orders     []store.Order
	TotalGross decimal.Decimal
	GP         decimal.Decimal
	Tax        decimal.Decimal
	Net        decimal.Decimal
}

// BuildInvoice restricts orders to the selected payment cycle and runs
// the split over the kept total. The caller supplies orders already
// purged of cancellations. The monthly cycle matches the selected month
// (0-11) against now's calendar year only; orders from that month in a
// prior year are excluded. Any other cycle keeps everything.
func BuildInvoice(orders []store.Order, cycle string, month int, now time.Time) Invoice {
	loc := now.Location()

	kept := orders
	if cycle == enum.CycleMonthly {
		kept = make([]store.Order, 0, len(orders))
		for _, o := range orders {
			t := o.CreatedAt.In(loc)
			if int(t.Month())-1 == month && t.Year() == now.Year() {
				kept = append(kept, o)
			}
		}
	}

	total := decimal.Zero
	for _, o := range kept {
		total = total.Add(o.Price.Total)
	}

	fin := Calculate(total)
	return Invoice{
		Cycle:      cycle,
		Month:      month,
		Orders:     kept,
		TotalGross: fin.Gross,
		GP:         fin.GP,
		Tax:        fin.Tax,
		Net:        fin.Net,
	}
}
