package report

import "go-bengkel-api/internal/model"

type DateBucket struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type CategoryBucket struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}

type ProductSales struct {
	Product       model.Product `json:"product"`
	TotalQuantity int           `json:"total_quantity"`
	TotalRevenue  float64       `json:"total_revenue"`
}

type SalesSummary struct {
	TotalSales         float64 `json:"total_sales"`
	TotalDiscount      float64 `json:"total_discount"`
	TotalTransactions  int     `json:"total_transactions"`
	AverageTransaction float64 `json:"average_transaction"`
}

type SalesReport struct {
	Summary         SalesSummary        `json:"summary"`
	Transactions    []model.Transaction `json:"transactions"`
	SalesByDate     []DateBucket        `json:"sales_by_date"`
	SalesByCategory []CategoryBucket    `json:"sales_by_category"`
	TopProducts     []ProductSales      `json:"top_products"`
}

type SupplierBucket struct {
	Supplier model.Supplier `json:"supplier"`
	Total    float64        `json:"total"`
	Count    int            `json:"count"`
}

type PurchasesSummary struct {
	TotalPurchases     float64 `json:"total_purchases"`
	TotalTransactions  int     `json:"total_transactions"`
	AverageTransaction float64 `json:"average_transaction"`
}

type PurchasesReport struct {
	Summary              PurchasesSummary    `json:"summary"`
	Transactions         []model.Transaction `json:"transactions"`
	PurchasesBySupplier  []SupplierBucket    `json:"purchases_by_supplier"`
	PurchasesByCategory  []CategoryBucket    `json:"purchases_by_category"`
}

type MoneyBlock struct {
	Total            float64 `json:"total"`
	TransactionCount int     `json:"transaction_count"`
}

type ProfitBlock struct {
	Gross       float64 `json:"gross"`
	Net         float64 `json:"net"`
	GrossMargin float64 `json:"gross_margin"`
	NetMargin   float64 `json:"net_margin"`
}

type ProfitReport struct {
	Revenue  MoneyBlock  `json:"revenue"`
	COGS     MoneyBlock  `json:"cogs"`
	Expenses MoneyBlock  `json:"expenses"`
	Profit   ProfitBlock `json:"profit"`
}

type StockCategoryBucket struct {
	Category      string  `json:"category"`
	TotalProducts int     `json:"total_products"`
	TotalStock    int     `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
}

type StockSummary struct {
	TotalProducts      int     `json:"total_products"`
	LowStockProducts   int     `json:"low_stock_products"`
	OutOfStockProducts int     `json:"out_of_stock_products"`
	TotalStockValue    float64 `json:"total_stock_value"`
	TotalSellingValue  float64 `json:"total_selling_value"`
	PotentialProfit    float64 `json:"potential_profit"`
}

type StockReport struct {
	Summary            StockSummary          `json:"summary"`
	LowStockProducts   []model.Product       `json:"low_stock_products"`
	OutOfStockProducts []model.Product       `json:"out_of_stock_products"`
	StockByCategory    []StockCategoryBucket `json:"stock_by_category"`
	AllProducts        []model.Product       `json:"all_products"`
}

type ExpensesSummary struct {
	TotalExpenses     float64 `json:"total_expenses"`
	TotalTransactions int     `json:"total_transactions"`
	AverageExpense    float64 `json:"average_expense"`
}

type ExpensesReport struct {
	Summary    ExpensesSummary `json:"summary"`
	Expenses   []model.Expense `json:"expenses"`
	ByCategory []CategoryTotal `json:"expenses_by_category"`
	ByDate     []DateBucket    `json:"expenses_by_date"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type DebtSummary struct {
	Total     float64 `json:"total"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Count     int     `json:"count"`
}

type PartyDebtBucket struct {
	Name      string  `json:"name"`
	Total     float64 `json:"total"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Count     int     `json:"count"`
}

type ReceivablesSide struct {
	Summary    DebtSummary       `json:"summary"`
	Data       []model.Receivable `json:"data"`
	ByCustomer []PartyDebtBucket  `json:"by_customer"`
}

type PayablesSide struct {
	Summary    DebtSummary      `json:"summary"`
	Data       []model.Payable  `json:"data"`
	BySupplier []PartyDebtBucket `json:"by_supplier"`
}

type DebtsReport struct {
	Receivables ReceivablesSide `json:"receivables"`
	Payables    PayablesSide    `json:"payables"`
}
