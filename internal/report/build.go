// Package report holds the read-side aggregation math. All builders are pure
// functions over already-loaded rows; grouping buckets keep first-seen order.
package report

import (
	"sort"

	"go-bengkel-api/internal/model"

	"go-bengkel-api/pkg/dateutil"

	"github.com/google/uuid"
)

// Margin is profit over revenue in percent, 0 when revenue is 0.
func Margin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}

// COGS sums quantity * current purchase price over the sale line items.
// Harga beli yang dipakai adalah harga saat query, bukan saat penjualan.
func COGS(sales []model.Transaction) float64 {
	var total float64
	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.Product != nil {
				total += float64(item.Quantity) * item.Product.PurchasePrice
			}
		}
	}
	return total
}

func BuildSalesReport(sales []model.Transaction) *SalesReport {
	rep := &SalesReport{Transactions: sales}

	dateIdx := map[string]int{}
	categoryIdx := map[string]int{}
	productIdx := map[uuid.UUID]int{}

	for _, t := range sales {
		rep.Summary.TotalSales += t.Total
		rep.Summary.TotalDiscount += t.Discount
		rep.Summary.TotalTransactions++

		day := dateutil.DayKey(t.Date)
		i, ok := dateIdx[day]
		if !ok {
			i = len(rep.SalesByDate)
			dateIdx[day] = i
			rep.SalesByDate = append(rep.SalesByDate, DateBucket{Date: day})
		}
		rep.SalesByDate[i].Total += t.Total
		rep.SalesByDate[i].Count++

		for _, item := range t.Items {
			if item.Product == nil {
				continue
			}
			categoryName := ""
			if item.Product.Category != nil {
				categoryName = item.Product.Category.Name
			}
			ci, ok := categoryIdx[categoryName]
			if !ok {
				ci = len(rep.SalesByCategory)
				categoryIdx[categoryName] = ci
				rep.SalesByCategory = append(rep.SalesByCategory, CategoryBucket{Category: categoryName})
			}
			rep.SalesByCategory[ci].Total += item.Subtotal
			rep.SalesByCategory[ci].Quantity += item.Quantity

			pi, ok := productIdx[item.ProductID]
			if !ok {
				pi = len(rep.TopProducts)
				productIdx[item.ProductID] = pi
				rep.TopProducts = append(rep.TopProducts, ProductSales{Product: *item.Product})
			}
			rep.TopProducts[pi].TotalQuantity += item.Quantity
			rep.TopProducts[pi].TotalRevenue += item.Subtotal
		}
	}

	if rep.Summary.TotalTransactions > 0 {
		rep.Summary.AverageTransaction = rep.Summary.TotalSales / float64(rep.Summary.TotalTransactions)
	}

	sort.SliceStable(rep.TopProducts, func(i, j int) bool {
		return rep.TopProducts[i].TotalRevenue > rep.TopProducts[j].TotalRevenue
	})
	if len(rep.TopProducts) > 10 {
		rep.TopProducts = rep.TopProducts[:10]
	}

	return rep
}

func BuildPurchasesReport(purchases []model.Transaction) *PurchasesReport {
	rep := &PurchasesReport{Transactions: purchases}

	supplierIdx := map[uuid.UUID]int{}
	categoryIdx := map[string]int{}

	for _, t := range purchases {
		rep.Summary.TotalPurchases += t.Total
		rep.Summary.TotalTransactions++

		if t.Supplier != nil {
			si, ok := supplierIdx[t.Supplier.ID]
			if !ok {
				si = len(rep.PurchasesBySupplier)
				supplierIdx[t.Supplier.ID] = si
				rep.PurchasesBySupplier = append(rep.PurchasesBySupplier, SupplierBucket{Supplier: *t.Supplier})
			}
			rep.PurchasesBySupplier[si].Total += t.Total
			rep.PurchasesBySupplier[si].Count++
		}

		for _, item := range t.Items {
			if item.Product == nil {
				continue
			}
			categoryName := ""
			if item.Product.Category != nil {
				categoryName = item.Product.Category.Name
			}
			ci, ok := categoryIdx[categoryName]
			if !ok {
				ci = len(rep.PurchasesByCategory)
				categoryIdx[categoryName] = ci
				rep.PurchasesByCategory = append(rep.PurchasesByCategory, CategoryBucket{Category: categoryName})
			}
			rep.PurchasesByCategory[ci].Total += item.Subtotal
			rep.PurchasesByCategory[ci].Quantity += item.Quantity
		}
	}

	if rep.Summary.TotalTransactions > 0 {
		rep.Summary.AverageTransaction = rep.Summary.TotalPurchases / float64(rep.Summary.TotalTransactions)
	}

	return rep
}

func BuildProfitReport(sales, purchases []model.Transaction, expenses []model.Expense) *ProfitReport {
	var revenue float64
	for _, s := range sales {
		revenue += s.Total
	}

	cogs := COGS(sales)

	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	gross := revenue - cogs
	net := gross - totalExpenses

	return &ProfitReport{
		Revenue:  MoneyBlock{Total: revenue, TransactionCount: len(sales)},
		COGS:     MoneyBlock{Total: cogs, TransactionCount: len(purchases)},
		Expenses: MoneyBlock{Total: totalExpenses, TransactionCount: len(expenses)},
		Profit: ProfitBlock{
			Gross:       gross,
			Net:         net,
			GrossMargin: Margin(gross, revenue),
			NetMargin:   Margin(net, revenue),
		},
	}
}

func BuildStockReport(products []model.Product) *StockReport {
	rep := &StockReport{AllProducts: products}
	rep.Summary.TotalProducts = len(products)

	categoryIdx := map[string]int{}

	for _, p := range products {
		if p.Stock <= p.MinStock {
			rep.LowStockProducts = append(rep.LowStockProducts, p)
		}
		if p.Stock == 0 {
			rep.OutOfStockProducts = append(rep.OutOfStockProducts, p)
		}
		rep.Summary.TotalStockValue += float64(p.Stock) * p.PurchasePrice
		rep.Summary.TotalSellingValue += float64(p.Stock) * p.SellingPrice

		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		ci, ok := categoryIdx[categoryName]
		if !ok {
			ci = len(rep.StockByCategory)
			categoryIdx[categoryName] = ci
			rep.StockByCategory = append(rep.StockByCategory, StockCategoryBucket{Category: categoryName})
		}
		rep.StockByCategory[ci].TotalProducts++
		rep.StockByCategory[ci].TotalStock += p.Stock
		rep.StockByCategory[ci].TotalValue += float64(p.Stock) * p.PurchasePrice
	}

	rep.Summary.LowStockProducts = len(rep.LowStockProducts)
	rep.Summary.OutOfStockProducts = len(rep.OutOfStockProducts)
	rep.Summary.PotentialProfit = rep.Summary.TotalSellingValue - rep.Summary.TotalStockValue

	return rep
}

func BuildExpensesReport(expenses []model.Expense) *ExpensesReport {
	rep := &ExpensesReport{Expenses: expenses}

	categoryIdx := map[string]int{}
	dateIdx := map[string]int{}

	for _, e := range expenses {
		rep.Summary.TotalExpenses += e.Amount
		rep.Summary.TotalTransactions++

		ci, ok := categoryIdx[e.Category]
		if !ok {
			ci = len(rep.ByCategory)
			categoryIdx[e.Category] = ci
			rep.ByCategory = append(rep.ByCategory, CategoryTotal{Category: e.Category})
		}
		rep.ByCategory[ci].Total += e.Amount
		rep.ByCategory[ci].Count++

		day := dateutil.DayKey(e.Date)
		di, ok := dateIdx[day]
		if !ok {
			di = len(rep.ByDate)
			dateIdx[day] = di
			rep.ByDate = append(rep.ByDate, DateBucket{Date: day})
		}
		rep.ByDate[di].Total += e.Amount
		rep.ByDate[di].Count++
	}

	if rep.Summary.TotalTransactions > 0 {
		rep.Summary.AverageExpense = rep.Summary.TotalExpenses / float64(rep.Summary.TotalTransactions)
	}

	return rep
}

func BuildDebtsReport(receivables []model.Receivable, payables []model.Payable) *DebtsReport {
	rep := &DebtsReport{}
	rep.Receivables.Data = receivables
	rep.Payables.Data = payables

	customerIdx := map[string]int{}
	for _, r := range receivables {
		rep.Receivables.Summary.Total += r.Amount
		rep.Receivables.Summary.Paid += r.PaidAmount
		rep.Receivables.Summary.Remaining += r.Remaining
		rep.Receivables.Summary.Count++

		name := r.CustomerName
		if name == "" {
			name = "Unknown Customer"
		}
		ci, ok := customerIdx[name]
		if !ok {
			ci = len(rep.Receivables.ByCustomer)
			customerIdx[name] = ci
			rep.Receivables.ByCustomer = append(rep.Receivables.ByCustomer, PartyDebtBucket{Name: name})
		}
		rep.Receivables.ByCustomer[ci].Total += r.Amount
		rep.Receivables.ByCustomer[ci].Paid += r.PaidAmount
		rep.Receivables.ByCustomer[ci].Remaining += r.Remaining
		rep.Receivables.ByCustomer[ci].Count++
	}

	supplierIdx := map[string]int{}
	for _, p := range payables {
		rep.Payables.Summary.Total += p.Amount
		rep.Payables.Summary.Paid += p.PaidAmount
		rep.Payables.Summary.Remaining += p.Remaining
		rep.Payables.Summary.Count++

		name := p.SupplierName
		if name == "" {
			name = "Unknown Supplier"
		}
		si, ok := supplierIdx[name]
		if !ok {
			si = len(rep.Payables.BySupplier)
			supplierIdx[name] = si
			rep.Payables.BySupplier = append(rep.Payables.BySupplier, PartyDebtBucket{Name: name})
		}
		rep.Payables.BySupplier[si].Total += p.Amount
		rep.Payables.BySupplier[si].Paid += p.PaidAmount
		rep.Payables.BySupplier[si].Remaining += p.Remaining
		rep.Payables.BySupplier[si].Count++
	}

	return rep
}
