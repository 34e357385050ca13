package rollup

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	financedomain "github.com/tailorsoft/atelier/internal/finance/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
)

func order(id int64, price, deposit float64, createdAt time.Time) orderdomain.Order {
	return orderdomain.Order{
		ID:        snowflake.ID(id),
		Status:    orderdomain.StatusPending,
		Price:     price,
		Deposit:   deposit,
		CreatedAt: createdAt,
	}
}

func payment(orderID int64, amount float64) paymentdomain.Payment {
	return paymentdomain.Payment{
		OrderID: snowflake.ID(orderID),
		Amount:  amount,
	}
}

func expense(category expensedomain.Category, amount float64, date time.Time) expensedomain.Expense {
	return expensedomain.Expense{
		Category:    category,
		Amount:      amount,
		ExpenseDate: date,
	}
}

var baseTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestOrderBalance(t *testing.T) {
	o := order(1, 1000, 200, baseTime)
	payments := []paymentdomain.Payment{
		payment(1, 300),
		payment(1, 100),
		payment(2, 9999), // other order, ignored
	}

	b := OrderBalance(o, payments)
	assert.Equal(t, 600.0, b.TotalPaid)
	assert.Equal(t, 400.0, b.Balance)
	assert.False(t, b.FullyPaid)
}

func TestOrderBalanceFullyPaidIsExact(t *testing.T) {
	o := order(1, 1000, 200, baseTime)

	exact := OrderBalance(o, []paymentdomain.Payment{payment(1, 800)})
	assert.Equal(t, 0.0, exact.Balance)
	assert.True(t, exact.FullyPaid)

	// Overpayment leaves a negative balance and is NOT fully paid.
	over := OrderBalance(o, []paymentdomain.Payment{payment(1, 900)})
	assert.Equal(t, -100.0, over.Balance)
	assert.False(t, over.FullyPaid)

	under := OrderBalance(o, []paymentdomain.Payment{payment(1, 799.99)})
	assert.False(t, under.FullyPaid)
}

func TestOrderBalanceDepositOnly(t *testing.T) {
	o := order(1, 500, 500, baseTime)

	b := OrderBalance(o, nil)
	assert.Equal(t, 500.0, b.TotalPaid)
	assert.Equal(t, 0.0, b.Balance)
	assert.True(t, b.FullyPaid)
}

func TestBalancesMatchesOrderBalance(t *testing.T) {
	orders := []orderdomain.Order{
		order(1, 1000, 100, baseTime),
		order(2, 500, 0, baseTime),
		order(3, 750, 750, baseTime),
	}
	payments := []paymentdomain.Payment{
		payment(1, 400),
		payment(2, 500),
		payment(1, 100),
	}

	balances := Balances(orders, payments)
	assert.Len(t, balances, 3)
	for i, o := range orders {
		assert.Equal(t, OrderBalance(o, payments), balances[i])
	}
	assert.False(t, balances[0].FullyPaid)
	assert.True(t, balances[1].FullyPaid)
	assert.True(t, balances[2].FullyPaid)
}

func TestAggregate(t *testing.T) {
	orders := []orderdomain.Order{
		order(1, 1000, 200, baseTime),
		order(2, 500, 100, baseTime),
	}
	payments := []paymentdomain.Payment{
		payment(1, 300),
		payment(2, 400),
	}
	expenses := []expensedomain.Expense{
		expense(expensedomain.CategoryRent, 350, baseTime),
		expense(expensedomain.CategoryMaterials, 150, baseTime),
	}

	agg := Aggregate(orders, payments, expenses, true)
	assert.Equal(t, 1500.0, agg.TotalRevenue)
	assert.Equal(t, 300.0, agg.TotalDeposits)
	assert.Equal(t, 1000.0, agg.TotalCollected)
	assert.Equal(t, 500.0, agg.Outstanding)
	assert.Equal(t, 500.0, agg.TotalExpenses)
	assert.Equal(t, 500.0, agg.NetProfit)

	// Outstanding is always revenue minus collected.
	assert.Equal(t, agg.TotalRevenue-agg.TotalCollected, agg.Outstanding)
}

func TestAggregateDepositsOnlyVariant(t *testing.T) {
	orders := []orderdomain.Order{order(1, 1000, 200, baseTime)}
	payments := []paymentdomain.Payment{payment(1, 300)}
	expenses := []expensedomain.Expense{expense(expensedomain.CategoryRent, 50, baseTime)}

	agg := Aggregate(orders, payments, expenses, false)
	// Collected still includes payments, only profit switches to deposits.
	assert.Equal(t, 500.0, agg.TotalCollected)
	assert.Equal(t, 150.0, agg.NetProfit)
}

func TestAggregateEmptyInputs(t *testing.T) {
	agg := Aggregate(nil, nil, nil, true)
	assert.Equal(t, financedomain.AggregateFinancials{}, agg)
}

func TestMonthlySeriesShapeAndOrder(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	series := MonthlySeries(nil, nil, now, 6, time.UTC)
	assert.Len(t, series, 6)
	assert.Equal(t, "Oct", series[0].Month)
	assert.Equal(t, 2023, series[0].Year)
	assert.Equal(t, "Mar", series[5].Month)
	assert.Equal(t, 2024, series[5].Year)
	for _, p := range series {
		assert.Zero(t, p.Revenue)
		assert.Zero(t, p.Expenses)
		assert.Zero(t, p.Profit)
	}
}

func TestMonthlySeriesBucketsDeposits(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	orders := []orderdomain.Order{
		order(1, 1000, 100, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),  // first instant of June
		order(2, 1000, 200, time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)),
		order(3, 1000, 400, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		order(4, 1000, 800, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)), // outside the window
	}
	expenses := []expensedomain.Expense{
		expense(expensedomain.CategoryRent, 50, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)),
		expense(expensedomain.CategorySalary, 70, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(orders, expenses, now, 6, time.UTC)
	assert.Len(t, series, 6)

	june := series[5]
	assert.Equal(t, "Jun", june.Month)
	assert.Equal(t, 300.0, june.Revenue)
	assert.Equal(t, 50.0, june.Expenses)
	assert.Equal(t, 250.0, june.Profit)

	may := series[4]
	assert.Equal(t, 400.0, may.Revenue)
	assert.Equal(t, 0.0, may.Expenses)

	april := series[3]
	assert.Equal(t, 0.0, april.Revenue)
	assert.Equal(t, 70.0, april.Expenses)
	assert.Equal(t, -70.0, april.Profit)

	// December 2023 order falls outside the trailing window entirely.
	var total float64
	for _, p := range series {
		total += p.Revenue
	}
	assert.Equal(t, 700.0, total)
}

func TestMonthlySeriesYearBoundary(t *testing.T) {
	now := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries(nil, nil, now, 6, time.UTC)
	assert.Equal(t, "Sep", series[0].Month)
	assert.Equal(t, 2023, series[0].Year)
	assert.Equal(t, "Jan", series[4].Month)
	assert.Equal(t, 2024, series[4].Year)
	assert.Equal(t, "Feb", series[5].Month)
}

func TestMonthlySeriesDefaults(t *testing.T) {
	series := MonthlySeries(nil, nil, baseTime, 0, nil)
	assert.Len(t, series, 6)
}

func TestCategoryBreakdownSortedDescending(t *testing.T) {
	expenses := []expensedomain.Expense{
		expense(expensedomain.CategoryRent, 100, baseTime),
		expense(expensedomain.CategoryMaterials, 400, baseTime),
		expense(expensedomain.CategoryRent, 250, baseTime),
		expense(expensedomain.CategorySalary, 350, baseTime),
	}

	breakdown := CategoryBreakdown(expenses)
	assert.Len(t, breakdown, 3)
	assert.Equal(t, "materials", breakdown[0].Category)
	assert.Equal(t, 400.0, breakdown[0].Total)
	assert.Equal(t, "rent", breakdown[1].Category)
	assert.Equal(t, 350.0, breakdown[1].Total)
	assert.Equal(t, "Materials & Fabric", breakdown[0].Label)
}

func TestCategoryBreakdownTiesKeepFirstSeen(t *testing.T) {
	expenses := []expensedomain.Expense{
		expense(expensedomain.CategoryTransport, 100, baseTime),
		expense(expensedomain.CategoryMarketing, 100, baseTime),
	}

	breakdown := CategoryBreakdown(expenses)
	assert.Equal(t, "transport", breakdown[0].Category)
	assert.Equal(t, "marketing", breakdown[1].Category)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestStatusCounts(t *testing.T) {
	counts := map[orderdomain.Status]int64{
		orderdomain.StatusPending:   3,
		orderdomain.StatusSewing:    2,
		orderdomain.StatusReady:     4,
		orderdomain.StatusDelivered: 1,
	}

	total, active, pendingDeliveries := StatusCounts(counts)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, int64(5), active)
	assert.Equal(t, int64(4), pendingDeliveries)
}
