// Package rollup computes derived financial figures from in-memory
// collections. Everything here is pure: callers load the rows, rollup
// folds them. Figures are recomputed on every read and never stored,
// so there is no snapshot to drift out of sync.
package rollup

import (
	"sort"
	"time"

	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	financedomain "github.com/tailorsoft/atelier/internal/finance/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
)

// OrderBalance settles a single order against its payments.
//
// totalPaid = deposit + sum of payments recorded for the order, and
// balance = price - totalPaid. FullyPaid requires the balance to be
// exactly zero: an overpaid order (negative balance) is deliberately
// not reported as fully paid so it stays visible for reconciliation.
func OrderBalance(order orderdomain.Order, payments []paymentdomain.Payment) financedomain.OrderBalance {
	totalPaid := order.Deposit
	for _, payment := range payments {
		if payment.OrderID != order.ID {
			continue
		}
		totalPaid += payment.Amount
	}

	balance := order.Price - totalPaid
	return financedomain.OrderBalance{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Description:  order.Description,
		Status:       string(order.Status),
		Price:        order.Price,
		Deposit:      order.Deposit,
		TotalPaid:    totalPaid,
		Balance:      balance,
		FullyPaid:    balance == 0,
	}
}

// Balances settles every order. Payments are bucketed by order first so
// the pass stays linear.
func Balances(orders []orderdomain.Order, payments []paymentdomain.Payment) []financedomain.OrderBalance {
	paidByOrder := make(map[int64]float64, len(orders))
	for _, payment := range payments {
		paidByOrder[int64(payment.OrderID)] += payment.Amount
	}

	balances := make([]financedomain.OrderBalance, 0, len(orders))
	for _, order := range orders {
		totalPaid := order.Deposit + paidByOrder[int64(order.ID)]
		balance := order.Price - totalPaid
		balances = append(balances, financedomain.OrderBalance{
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			Description:  order.Description,
			Status:       string(order.Status),
			Price:        order.Price,
			Deposit:      order.Deposit,
			TotalPaid:    totalPaid,
			Balance:      balance,
			FullyPaid:    balance == 0,
		})
	}
	return balances
}

// Aggregate folds the whole book into one summary.
//
// Revenue counts the full agreed price of every order, collected money
// is deposits plus recorded payments, and outstanding is simply the
// difference. Net profit depends on whether the shop records payments
// at all: when trackPayments is false only deposits count as income.
func Aggregate(
	orders []orderdomain.Order,
	payments []paymentdomain.Payment,
	expenses []expensedomain.Expense,
	trackPayments bool,
) financedomain.AggregateFinancials {
	var agg financedomain.AggregateFinancials

	for _, order := range orders {
		agg.TotalRevenue += order.Price
		agg.TotalDeposits += order.Deposit
	}

	agg.TotalCollected = agg.TotalDeposits
	for _, payment := range payments {
		agg.TotalCollected += payment.Amount
	}

	agg.Outstanding = agg.TotalRevenue - agg.TotalCollected

	for _, expense := range expenses {
		agg.TotalExpenses += expense.Amount
	}

	if trackPayments {
		agg.NetProfit = agg.TotalCollected - agg.TotalExpenses
	} else {
		agg.NetProfit = agg.TotalDeposits - agg.TotalExpenses
	}

	return agg
}

// MonthlySeries buckets deposits and expenses into the trailing
// `months` calendar months ending with the month containing now.
// Buckets are zero-filled and returned oldest first, so the series
// always has exactly `months` entries regardless of the data.
//
// Revenue per bucket is the sum of deposits of orders created inside
// the month; month boundaries are inclusive on both ends.
func MonthlySeries(
	orders []orderdomain.Order,
	expenses []expensedomain.Expense,
	now time.Time,
	months int,
	loc *time.Location,
) []financedomain.MonthlyPoint {
	if months <= 0 {
		months = 6
	}
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	points := make([]financedomain.MonthlyPoint, months)
	starts := make([]time.Time, months)
	ends := make([]time.Time, months)
	for i := 0; i < months; i++ {
		offset := months - 1 - i
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -offset, 0)
		starts[i] = start
		ends[i] = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		points[i] = financedomain.MonthlyPoint{
			Month: start.Format("Jan"),
			Year:  start.Year(),
		}
	}

	bucket := func(ts time.Time) int {
		ts = ts.In(loc)
		for i := range starts {
			if !ts.Before(starts[i]) && !ts.After(ends[i]) {
				return i
			}
		}
		return -1
	}

	for _, order := range orders {
		if i := bucket(order.CreatedAt); i >= 0 {
			points[i].Revenue += order.Deposit
		}
	}
	for _, expense := range expenses {
		if i := bucket(expense.ExpenseDate); i >= 0 {
			points[i].Expenses += expense.Amount
		}
	}
	for i := range points {
		points[i].Profit = points[i].Revenue - points[i].Expenses
	}

	return points
}

// CategoryBreakdown sums expenses per category, largest first. Ties
// keep first-seen order.
func CategoryBreakdown(expenses []expensedomain.Expense) []financedomain.CategoryTotal {
	totals := make(map[expensedomain.Category]float64)
	var seen []expensedomain.Category
	for _, expense := range expenses {
		if _, ok := totals[expense.Category]; !ok {
			seen = append(seen, expense.Category)
		}
		totals[expense.Category] += expense.Amount
	}

	breakdown := make([]financedomain.CategoryTotal, 0, len(seen))
	for _, category := range seen {
		breakdown = append(breakdown, financedomain.CategoryTotal{
			Category: string(category),
			Label:    category.Label(),
			Total:    totals[category],
		})
	}

	// Stable sort keeps first-seen order for equal totals.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

// StatusCounts derives the order-related dashboard figures from a
// status histogram.
func StatusCounts(counts map[orderdomain.Status]int64) (total, active, pendingDeliveries int64) {
	for status, n := range counts {
		total += n
		if status.IsActive() {
			active += n
		}
		if status == orderdomain.StatusReady {
			pendingDeliveries += n
		}
	}
	return total, active, pendingDeliveries
}
