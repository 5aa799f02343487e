package service

import (
	"testing"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.Payment{},
		&model.Receivable{},
		&model.ReceivablePayment{},
		&model.Payable{},
		&model.PayablePayment{},
		&model.Expense{},
	))
	return db
}

type ledgerFixture struct {
	db       *gorm.DB
	svc      LedgerService
	category model.Category
	product  model.Product
	customer model.Customer
	supplier model.Supplier
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := setupTestDB(t)

	f := &ledgerFixture{db: db}
	f.category = model.Category{Name: "Sparepart"}
	require.NoError(t, db.Create(&f.category).Error)
	f.product = model.Product{
		Code: "SPR-001", Name: "Kampas Rem", CategoryID: f.category.ID,
		Stock: 10, MinStock: 2, PurchasePrice: 35000, SellingPrice: 55000,
	}
	require.NoError(t, db.Create(&f.product).Error)
	f.customer = model.Customer{Code: "CUST-001", Name: "Budi Santoso", Type: model.CustomerGeneral}
	require.NoError(t, db.Create(&f.customer).Error)
	f.supplier = model.Supplier{Code: "SUP-001", Name: "CV Sumber Sparepart"}
	require.NoError(t, db.Create(&f.supplier).Error)

	f.svc = NewLedgerService(
		repository.NewProductRepo(db),
		repository.NewTransactionRepo(db),
		repository.NewReceivableRepo(db),
		repository.NewPayableRepo(db),
		db, nil,
	)
	return f
}

func (f *ledgerFixture) stockOf(t *testing.T, id uuid.UUID) int {
	t.Helper()
	var p model.Product
	require.NoError(t, f.db.First(&p, "id = ?", id).Error)
	return p.Stock
}

func TestCreateTransactionSaleDeductsStock(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-001",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentMethod: "CASH",
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    110000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 2, Price: 55000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 110000.0, txn.Total)
	assert.Equal(t, 0.0, txn.RemainingAmount)
	assert.Equal(t, 8, f.stockOf(t, f.product.ID))

	// Lunas: tidak boleh ada piutang yang terbuka
	var count int64
	f.db.Model(&model.Receivable{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTransactionPurchaseAddsStockAndOpensPayable(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "PO-001",
		Type:          model.TxPurchase,
		SupplierID:    &f.supplier.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 20, Price: 35000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 30, f.stockOf(t, f.product.ID))
	assert.Equal(t, 700000.0, txn.RemainingAmount)

	var payable model.Payable
	require.NoError(t, f.db.First(&payable, "transaction_id = ?", txn.ID).Error)
	assert.Equal(t, f.supplier.Name, payable.SupplierName)
	assert.Equal(t, 700000.0, payable.Remaining)
	assert.Equal(t, model.PaymentUnpaid, payable.Status)
}

func TestCreateTransactionCreditSaleOpensReceivable(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-002",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentInstallment,
		PaidAmount:    100000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 5, Price: 55000},
		},
	})
	require.NoError(t, err)

	var receivable model.Receivable
	require.NoError(t, f.db.First(&receivable, "transaction_id = ?", txn.ID).Error)
	assert.Equal(t, f.customer.ID, receivable.CustomerID)
	assert.Equal(t, "Budi Santoso", receivable.CustomerName)
	assert.Equal(t, 275000.0, receivable.Amount)
	assert.Equal(t, 100000.0, receivable.PaidAmount)
	assert.Equal(t, 175000.0, receivable.Remaining)
	assert.Equal(t, "Invoice INV-002", receivable.Description)
}

func TestCreateTransactionInsufficientStockRollsBack(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-003",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 11, Price: 55000},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock) // satu sentinel untuk semua layer

	// Seluruh unit kerja harus batal: header, items, stok, piutang
	assert.Equal(t, 10, f.stockOf(t, f.product.ID))
	var headers, items, receivables int64
	f.db.Model(&model.Transaction{}).Count(&headers)
	f.db.Model(&model.TransactionItem{}).Count(&items)
	f.db.Model(&model.Receivable{}).Count(&receivables)
	assert.Equal(t, int64(0), headers)
	assert.Equal(t, int64(0), items)
	assert.Equal(t, int64(0), receivables)
}

func TestCreateTransactionPartialFailureRestoresEarlierItems(t *testing.T) {
	f := newLedgerFixture(t)
	second := model.Product{
		Code: "SPR-002", Name: "Busi", CategoryID: f.category.ID,
		Stock: 1, MinStock: 1, PurchasePrice: 60000, SellingPrice: 90000,
	}
	require.NoError(t, f.db.Create(&second).Error)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-004",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 3, Price: 55000},
			{ProductID: second.ID, Quantity: 2, Price: 90000},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Item pertama sudah sempat memotong stok, rollback mengembalikannya
	assert.Equal(t, 10, f.stockOf(t, f.product.ID))
	assert.Equal(t, 1, f.stockOf(t, second.ID))
}

func TestCreateTransactionRejectsTotalsMismatch(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-005",
		Type:          model.TxSale,
		PaymentStatus: model.PaymentPaid,
		Total:         999999, // tidak cocok dengan items
		PaidAmount:    999999,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	})
	assert.ErrorIs(t, err, ErrTotalsMismatch)

	_, err = f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-006",
		Type:          model.TxSale,
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    10000, // PAID tapi kurang bayar
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	})
	assert.ErrorIs(t, err, ErrTotalsMismatch)
}

func TestCreateTransactionDuplicateInvoiceRejected(t *testing.T) {
	f := newLedgerFixture(t)

	req := &CreateTransactionRequest{
		InvoiceNumber: "INV-007",
		Type:          model.TxSale,
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    55000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	}
	_, err := f.svc.CreateTransaction(req)
	require.NoError(t, err)

	dup := *req
	dup.Items = []TransactionItemInput{{ProductID: f.product.ID, Quantity: 1, Price: 55000}}
	_, err = f.svc.CreateTransaction(&dup)
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
}

func TestCreateTransactionWalkInCustomerNameGoesToNotes(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-008",
		Type:          model.TxSale,
		CustomerName:  "Pak Joko",
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    55000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, txn.CustomerID)
	assert.Equal(t, "Customer: Pak Joko", txn.Notes)
}

func TestCreateTransactionUnknownPartyRejected(t *testing.T) {
	f := newLedgerFixture(t)
	ghost := uuid.New()

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-009",
		Type:          model.TxSale,
		CustomerID:    &ghost,
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    55000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 10, f.stockOf(t, f.product.ID))
}

func TestApplyTransactionPaymentPartialThenFull(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-010",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 4, Price: 55000}, // total 220000
		},
	})
	require.NoError(t, err)

	// Cicilan pertama: status naik ke INSTALLMENT
	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 120000})
	require.NoError(t, err)

	reloaded, err := f.svc.GetTransaction(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentInstallment, reloaded.PaymentStatus)
	assert.Equal(t, 120000.0, reloaded.PaidAmount)
	assert.Equal(t, 100000.0, reloaded.RemainingAmount)

	// Piutang tertaut ikut bergeser dengan angka yang sama
	var receivable model.Receivable
	require.NoError(t, f.db.First(&receivable, "transaction_id = ?", txn.ID).Error)
	assert.Equal(t, 120000.0, receivable.PaidAmount)
	assert.Equal(t, 100000.0, receivable.Remaining)
	assert.Equal(t, model.PaymentInstallment, receivable.Status)

	// Pelunasan
	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 100000})
	require.NoError(t, err)

	reloaded, err = f.svc.GetTransaction(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.PaymentStatus)
	assert.Equal(t, 0.0, reloaded.RemainingAmount)

	require.NoError(t, f.db.First(&receivable, "transaction_id = ?", txn.ID).Error)
	assert.Equal(t, model.PaymentPaid, receivable.Status)
	assert.Equal(t, 0.0, receivable.Remaining)

	payments, err := f.svc.ListTransactionPayments(txn.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestApplyTransactionPaymentRejectsBadAmounts(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-011",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 2, Price: 55000},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: -500})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 110001})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)

	_, err = f.svc.ApplyTransactionPayment(uuid.New(), &PaymentRequest{Amount: 1000})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyTransactionPaymentSnapsFloatResidue(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-014",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 2, Price: 55000}, // total 110000
		},
	})
	require.NoError(t, err)

	// Sisa 0.005 masih dalam toleransi: dianggap lunas, dan bukan hanya
	// remaining — paid_amount juga di-snap ke total tanpa residu float
	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 109999.995})
	require.NoError(t, err)

	reloaded, err := f.svc.GetTransaction(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.PaymentStatus)
	assert.Equal(t, 0.0, reloaded.RemainingAmount)
	assert.Equal(t, 110000.0, reloaded.PaidAmount)

	var receivable model.Receivable
	require.NoError(t, f.db.First(&receivable, "transaction_id = ?", txn.ID).Error)
	assert.Equal(t, model.PaymentPaid, receivable.Status)
	assert.Equal(t, 0.0, receivable.Remaining)
	assert.Equal(t, 110000.0, receivable.PaidAmount)
}

func TestApplyTransactionPaymentOnSettledRejected(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-012",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    55000,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 1, Price: 55000},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 1})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
}

func TestDeleteTransactionCascadesButKeepsStock(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		InvoiceNumber: "INV-013",
		Type:          model.TxSale,
		CustomerID:    &f.customer.ID,
		PaymentStatus: model.PaymentUnpaid,
		Items: []TransactionItemInput{
			{ProductID: f.product.ID, Quantity: 3, Price: 55000},
		},
	})
	require.NoError(t, err)
	_, err = f.svc.ApplyTransactionPayment(txn.ID, &PaymentRequest{Amount: 50000})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTransaction(txn.ID))

	_, err = f.svc.GetTransaction(txn.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var items, payments int64
	f.db.Model(&model.TransactionItem{}).Where("transaction_id = ?", txn.ID).Count(&items)
	f.db.Model(&model.Payment{}).Where("transaction_id = ?", txn.ID).Count(&payments)
	assert.Equal(t, int64(0), items)
	assert.Equal(t, int64(0), payments)

	// Penghapusan adalah koreksi administratif, stok tidak dikembalikan
	assert.Equal(t, 7, f.stockOf(t, f.product.ID))
}
