package service

import (
	"testing"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type debtFixture struct {
	db       *gorm.DB
	svc      DebtService
	customer model.Customer
	supplier model.Supplier
}

func newDebtFixture(t *testing.T) *debtFixture {
	t.Helper()
	db := setupTestDB(t)

	f := &debtFixture{db: db}
	f.customer = model.Customer{Code: "CUST-001", Name: "PT Maju Jaya", Type: model.CustomerCompany}
	require.NoError(t, db.Create(&f.customer).Error)
	f.supplier = model.Supplier{Code: "SUP-001", Name: "UD Ban Makmur"}
	require.NoError(t, db.Create(&f.supplier).Error)

	f.svc = NewDebtService(
		repository.NewReceivableRepo(db),
		repository.NewPayableRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewSupplierRepo(db),
		db, nil,
	)
	return f
}

func TestCreateReceivableDefaults(t *testing.T) {
	f := newDebtFixture(t)

	receivable, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     500000,
		DueDate:    "2026-09-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "PT Maju Jaya", receivable.CustomerName) // diambil dari master
	assert.Equal(t, model.PaymentUnpaid, receivable.Status)
	assert.Equal(t, 500000.0, receivable.Remaining)
	require.NotNil(t, receivable.DueDate)
	assert.Equal(t, "2026-09-30", receivable.DueDate.Format("2006-01-02"))
}

func TestCreateReceivableRejectsOverpaidAndUnknownCustomer(t *testing.T) {
	f := newDebtFixture(t)

	_, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     100000,
		PaidAmount: 150000,
	})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)

	_, err = f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: uuid.New(),
		Amount:     100000,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyReceivablePaymentLifecycle(t *testing.T) {
	f := newDebtFixture(t)

	receivable, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     300000,
	})
	require.NoError(t, err)

	// Cicilan parsial: UNPAID naik ke INSTALLMENT
	payment, err := f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 100000})
	require.NoError(t, err)
	assert.Equal(t, "CASH", payment.PaymentMethod) // default method

	reloaded, err := f.svc.GetReceivable(receivable.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentInstallment, reloaded.Status)
	assert.Equal(t, 100000.0, reloaded.PaidAmount)
	assert.Equal(t, 200000.0, reloaded.Remaining)

	// Saldo hanya boleh turun, tidak pernah melebihi sisa
	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 200001})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)

	// Pelunasan tepat: status final PAID, sisa persis nol
	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 200000, PaymentMethod: "TRANSFER"})
	require.NoError(t, err)

	reloaded, err = f.svc.GetReceivable(receivable.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.Status)
	assert.Equal(t, 0.0, reloaded.Remaining)
	assert.Equal(t, 300000.0, reloaded.PaidAmount)

	// PAID bersifat final: pembayaran lanjutan ditolak
	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 1})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)

	payments, err := f.svc.ListReceivablePayments(receivable.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestApplyReceivablePaymentSnapsFloatResidue(t *testing.T) {
	f := newDebtFixture(t)

	receivable, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     100000,
	})
	require.NoError(t, err)

	// Kurang 0.005 dari sisa masih dihitung lunas; paid_amount ikut di-snap
	// ke nominal piutang, tidak menyisakan residu float
	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 99999.995})
	require.NoError(t, err)

	reloaded, err := f.svc.GetReceivable(receivable.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.Status)
	assert.Equal(t, 0.0, reloaded.Remaining)
	assert.Equal(t, 100000.0, reloaded.PaidAmount)
}

func TestApplyReceivablePaymentRejectsNonPositive(t *testing.T) {
	f := newDebtFixture(t)

	receivable, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     50000,
	})
	require.NoError(t, err)

	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: -100})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.ApplyReceivablePayment(uuid.New(), &PaymentRequest{Amount: 100})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyPayablePaymentLifecycle(t *testing.T) {
	f := newDebtFixture(t)

	payable, err := f.svc.CreatePayable(&CreatePayableRequest{
		SupplierID: f.supplier.ID,
		Amount:     800000,
		PaidAmount: 300000,
		Status:     model.PaymentInstallment,
	})
	require.NoError(t, err)
	assert.Equal(t, "UD Ban Makmur", payable.SupplierName)
	assert.Equal(t, 500000.0, payable.Remaining)

	_, err = f.svc.ApplyPayablePayment(payable.ID, &PaymentRequest{Amount: 500000})
	require.NoError(t, err)

	reloaded, err := f.svc.GetPayable(payable.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, reloaded.Status)
	assert.Equal(t, 0.0, reloaded.Remaining)
	assert.Equal(t, 800000.0, reloaded.PaidAmount)
}

func TestDeleteReceivableCascadesPayments(t *testing.T) {
	f := newDebtFixture(t)

	receivable, err := f.svc.CreateReceivable(&CreateReceivableRequest{
		CustomerID: f.customer.ID,
		Amount:     100000,
	})
	require.NoError(t, err)
	_, err = f.svc.ApplyReceivablePayment(receivable.ID, &PaymentRequest{Amount: 40000})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteReceivable(receivable.ID))

	_, err = f.svc.GetReceivable(receivable.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var payments int64
	f.db.Model(&model.ReceivablePayment{}).Where("receivable_id = ?", receivable.ID).Count(&payments)
	assert.Equal(t, int64(0), payments)
}

func TestListReceivablesFiltersByStatus(t *testing.T) {
	f := newDebtFixture(t)

	_, err := f.svc.CreateReceivable(&CreateReceivableRequest{CustomerID: f.customer.ID, Amount: 100000})
	require.NoError(t, err)
	paid, err := f.svc.CreateReceivable(&CreateReceivableRequest{CustomerID: f.customer.ID, Amount: 200000})
	require.NoError(t, err)
	_, err = f.svc.ApplyReceivablePayment(paid.ID, &PaymentRequest{Amount: 200000})
	require.NoError(t, err)

	unpaid, err := f.svc.ListReceivables(nil, model.PaymentUnpaid)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)

	all, err := f.svc.ListReceivables(&f.customer.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
