package main

import (
	"log"
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a fresh development database with a small but realistic workshop
// dataset: categories, products, parties, a handful of transactions with
// their debt records, and running expenses.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
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
	)

	// 3. Wipe existing data (children first)
	log.Println("🧹 Clearing existing data...")
	for _, m := range []interface{}{
		&model.ReceivablePayment{}, &model.PayablePayment{},
		&model.Receivable{}, &model.Payable{},
		&model.Payment{}, &model.TransactionItem{}, &model.Transaction{},
		&model.Expense{}, &model.Product{}, &model.Category{},
		&model.Customer{}, &model.Supplier{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			log.Fatalf("❌ Failed to clear table: %v", err)
		}
	}

	// 4. Categories
	log.Println("📦 Seeding categories...")
	oli := model.Category{Name: "Oli & Pelumas", Description: "Oli mesin, gardan, dan pelumas lain"}
	ban := model.Category{Name: "Ban", Description: "Ban motor berbagai ukuran"}
	sparepart := model.Category{Name: "Sparepart", Description: "Suku cadang umum"}
	jasa := model.Category{Name: "Jasa", Description: "Jasa servis dan pemasangan"}
	for _, c := range []*model.Category{&oli, &ban, &sparepart, &jasa} {
		if err := db.Create(c).Error; err != nil {
			log.Fatalf("❌ Failed to seed category %s: %v", c.Name, err)
		}
	}

	// 5. Products
	log.Println("🔧 Seeding products...")
	products := []model.Product{
		{Code: "OLI-001", Name: "Oli Mesin 10W-40 1L", CategoryID: oli.ID, Stock: 40, MinStock: 10, PurchasePrice: 45000, SellingPrice: 65000},
		{Code: "OLI-002", Name: "Oli Gardan 120ml", CategoryID: oli.ID, Stock: 25, MinStock: 5, PurchasePrice: 12000, SellingPrice: 20000},
		{Code: "BAN-001", Name: "Ban Tubeless 80/90-14", CategoryID: ban.ID, Stock: 12, MinStock: 4, PurchasePrice: 180000, SellingPrice: 250000},
		{Code: "BAN-002", Name: "Ban Dalam 17\"", CategoryID: ban.ID, Stock: 30, MinStock: 8, PurchasePrice: 25000, SellingPrice: 40000},
		{Code: "SPR-001", Name: "Kampas Rem Depan", CategoryID: sparepart.ID, Stock: 20, MinStock: 5, PurchasePrice: 35000, SellingPrice: 55000},
		{Code: "SPR-002", Name: "Busi Iridium", CategoryID: sparepart.ID, Stock: 15, MinStock: 5, PurchasePrice: 60000, SellingPrice: 90000},
		{Code: "SPR-003", Name: "Filter Udara", CategoryID: sparepart.ID, Stock: 3, MinStock: 5, PurchasePrice: 40000, SellingPrice: 65000},
		{Code: "JSA-001", Name: "Jasa Servis Ringan", CategoryID: jasa.ID, Stock: 999, MinStock: 0, PurchasePrice: 0, SellingPrice: 50000},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed product %s: %v", products[i].Code, err)
		}
	}

	// 6. Customers & Suppliers
	log.Println("👥 Seeding parties...")
	customers := []model.Customer{
		{Code: "CUST-001", Name: "Budi Santoso", Type: model.CustomerGeneral, Phone: "081234567890", Address: "Jl. Merdeka No. 12"},
		{Code: "CUST-002", Name: "PT Maju Jaya", Type: model.CustomerCompany, CompanyName: "PT Maju Jaya", Phone: "0215556677", Email: "fleet@majujaya.co.id", Address: "Kawasan Industri Blok C-4"},
		{Code: "CUST-003", Name: "Siti Rahma", Type: model.CustomerGeneral, Phone: "085678901234"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed customer %s: %v", customers[i].Code, err)
		}
	}
	suppliers := []model.Supplier{
		{Code: "SUP-001", Name: "CV Sumber Sparepart", CompanyName: "CV Sumber Sparepart", Phone: "0218889990", Address: "Jl. Raya Bogor KM 28"},
		{Code: "SUP-002", Name: "UD Ban Makmur", CompanyName: "UD Ban Makmur", Phone: "081112223334"},
	}
	for i := range suppliers {
		if err := db.Create(&suppliers[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed supplier %s: %v", suppliers[i].Code, err)
		}
	}

	// 7. Transactions (one paid sale, one installment sale, one unpaid purchase)
	log.Println("🧾 Seeding transactions...")
	now := time.Now()

	// Paid cash sale: 2x oil change for a walk-in regular
	sale1 := model.Transaction{
		InvoiceNumber: "INV-20260801-001",
		Type:          model.TxSale,
		Date:          now.AddDate(0, 0, -7),
		CustomerID:    &customers[0].ID,
		Subtotal:      130000,
		Total:         130000,
		PaymentMethod: "CASH",
		PaymentStatus: model.PaymentPaid,
		PaidAmount:    130000,
		Status:        model.TxStatusCompleted,
		Items: []model.TransactionItem{
			{ProductID: products[0].ID, Quantity: 2, Price: 65000, Subtotal: 130000},
		},
		Payments: []model.Payment{
			{Amount: 130000, PaymentDate: now.AddDate(0, 0, -7), PaymentMethod: "CASH"},
		},
	}
	if err := db.Create(&sale1).Error; err != nil {
		log.Fatalf("❌ Failed to seed sale: %v", err)
	}

	// Installment fleet sale with an open receivable
	sale2 := model.Transaction{
		InvoiceNumber: "INV-20260815-002",
		Type:          model.TxSale,
		Date:          now.AddDate(0, 0, -3),
		CustomerID:    &customers[1].ID,
		Subtotal:      500000,
		Total:         500000,
		PaymentMethod: "TRANSFER",
		PaymentStatus: model.PaymentInstallment,
		PaidAmount:      200000,
		RemainingAmount: 300000,
		Status:          model.TxStatusCompleted,
		Items: []model.TransactionItem{
			{ProductID: products[2].ID, Quantity: 2, Price: 250000, Subtotal: 500000},
		},
		Payments: []model.Payment{
			{Amount: 200000, PaymentDate: now.AddDate(0, 0, -3), PaymentMethod: "TRANSFER", Notes: "DP armada"},
		},
	}
	if err := db.Create(&sale2).Error; err != nil {
		log.Fatalf("❌ Failed to seed installment sale: %v", err)
	}
	due := now.AddDate(0, 1, 0)
	if err := db.Create(&model.Receivable{
		CustomerID:    customers[1].ID,
		CustomerName:  customers[1].Name,
		TransactionID: &sale2.ID,
		Amount:        500000,
		PaidAmount:    200000,
		Remaining:     300000,
		DueDate:       &due,
		Status:        model.PaymentInstallment,
		Description:   "Invoice INV-20260815-002",
	}).Error; err != nil {
		log.Fatalf("❌ Failed to seed receivable: %v", err)
	}

	// Unpaid stock purchase with an open payable
	purchase := model.Transaction{
		InvoiceNumber: "PO-20260820-001",
		Type:          model.TxPurchase,
		Date:          now.AddDate(0, 0, -1),
		SupplierID:    &suppliers[0].ID,
		Subtotal:      700000,
		Total:         700000,
		PaymentMethod: "TRANSFER",
		PaymentStatus: model.PaymentUnpaid,
		RemainingAmount: 700000,
		Status:          model.TxStatusCompleted,
		Items: []model.TransactionItem{
			{ProductID: products[4].ID, Quantity: 20, Price: 35000, Subtotal: 700000},
		},
	}
	if err := db.Create(&purchase).Error; err != nil {
		log.Fatalf("❌ Failed to seed purchase: %v", err)
	}
	if err := db.Create(&model.Payable{
		SupplierID:    suppliers[0].ID,
		SupplierName:  suppliers[0].Name,
		TransactionID: &purchase.ID,
		Amount:        700000,
		Remaining:     700000,
		Status:        model.PaymentUnpaid,
		Description:   "Invoice PO-20260820-001",
	}).Error; err != nil {
		log.Fatalf("❌ Failed to seed payable: %v", err)
	}

	// 8. Expenses
	log.Println("💸 Seeding expenses...")
	expenses := []model.Expense{
		{Date: now.AddDate(0, 0, -10), Category: "Listrik", Amount: 450000, Description: "Tagihan listrik bengkel"},
		{Date: now.AddDate(0, 0, -5), Category: "Gaji", Amount: 3500000, Description: "Gaji mekanik Agustus"},
		{Date: now.AddDate(0, 0, -2), Category: "Operasional", Amount: 150000, Description: "Bensin motor operasional"},
	}
	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed expense: %v", err)
		}
	}

	log.Println("✅ Seed complete!")
}
