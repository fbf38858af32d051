package billing

import (
	"errors"
	"fmt"
	"testing"

	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the billing schema. One
// open connection only, so every transaction sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&users.User{},
		&projects.Project{},
		&Payment{},
		&ResellerEarning{},
	); err != nil {
		t.Fatalf("Failed to migrate test db: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *users.User {
	t.Helper()

	user := users.User{
		Email:        fmt.Sprintf("%s-%d@example.com", role, seq()),
		PasswordHash: "x",
		FullName:     "Test " + role,
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return &user
}

func seedProject(t *testing.T, db *gorm.DB, ownerID uint, resellerID *uint) *projects.Project {
	t.Helper()

	project := projects.Project{
		UserID:       ownerID,
		ResellerID:   resellerID,
		TemplateID:   1,
		Subdomain:    fmt.Sprintf("wedding-%d", seq()),
		BrideName:    "Dinda",
		GroomName:    "Rafi",
		EventTime:    "10:00",
		VenueName:    "Gedung Serbaguna",
		VenueAddress: "Jl. Melati 1",
		Status:       projects.StatusPublished,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}
	return &project
}

func seedPayment(t *testing.T, db *gorm.DB, projectID, userID uint, amount, currency, gatewayID string) *Payment {
	t.Helper()

	payment := Payment{
		ProjectID:        projectID,
		UserID:           userID,
		Amount:           decimal.RequireFromString(amount),
		Currency:         currency,
		PaymentGateway:   "midtrans",
		GatewayPaymentID: &gatewayID,
		Status:           StatusPending,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("Failed to seed payment: %v", err)
	}
	return &payment
}

var seqCounter int

func seq() int {
	seqCounter++
	return seqCounter
}

func countEarnings(t *testing.T, db *gorm.DB, paymentID uint) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&ResellerEarning{}).Where("payment_id = ?", paymentID).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count earnings: %v", err)
	}
	return n
}

var defaultRate = decimal.RequireFromString("0.10")

func TestSettle_PaidWithReseller(t *testing.T) {
	t.Run("Given an IDR payment with a reseller project When settled paid Then payment, project and commission all land", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		reseller := seedUser(t, db, users.RoleReseller)
		project := seedProject(t, db, owner.ID, &reseller.ID)
		payment := seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-1")

		settled, err := Settle(db, "mt-order-1", StatusPaid, []byte(`{"transaction_status":"settlement"}`), defaultRate)
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		if settled.Status != StatusPaid {
			t.Errorf("expected status paid, got %s", settled.Status)
		}
		if settled.PaidAt == nil {
			t.Error("expected paid_at to be set")
		}

		var gotProject projects.Project
		if err := db.First(&gotProject, project.ID).Error; err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		if !gotProject.IsPaid {
			t.Error("expected project to be marked paid")
		}

		var earning ResellerEarning
		if err := db.Where("payment_id = ?", payment.ID).First(&earning).Error; err != nil {
			t.Fatalf("Failed to load earning: %v", err)
		}
		if earning.ResellerID != reseller.ID {
			t.Errorf("expected earning for reseller %d, got %d", reseller.ID, earning.ResellerID)
		}
		if !earning.CommissionRate.Equal(defaultRate) {
			t.Errorf("expected rate 0.10, got %s", earning.CommissionRate)
		}
		if !earning.CommissionAmount.Equal(decimal.RequireFromString("15000")) {
			t.Errorf("expected commission 15000, got %s", earning.CommissionAmount)
		}
	})

	t.Run("Given a settled payment When the same notification arrives again Then exactly one earning remains", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		reseller := seedUser(t, db, users.RoleReseller)
		project := seedProject(t, db, owner.ID, &reseller.ID)
		payment := seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-2")

		for i := 0; i < 3; i++ {
			if _, err := Settle(db, "mt-order-2", StatusPaid, []byte(`{}`), defaultRate); err != nil {
				t.Fatalf("Settle call %d failed: %v", i+1, err)
			}
		}

		if n := countEarnings(t, db, payment.ID); n != 1 {
			t.Errorf("expected exactly 1 earning after repeated settlement, got %d", n)
		}

		var gotPayment Payment
		if err := db.First(&gotPayment, payment.ID).Error; err != nil {
			t.Fatalf("Failed to reload payment: %v", err)
		}
		if gotPayment.PaidAt == nil {
			t.Error("expected paid_at to survive repeated settlement")
		}
	})
}

func TestSettle_NoCommissionWithoutReseller(t *testing.T) {
	t.Run("Given a project without a reseller When settled paid Then no earning is created", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		project := seedProject(t, db, owner.ID, nil)
		payment := seedPayment(t, db, project.ID, owner.ID, "299.99", "USD", "mt-order-3")

		if _, err := Settle(db, "mt-order-3", StatusPaid, nil, defaultRate); err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		if n := countEarnings(t, db, payment.ID); n != 0 {
			t.Errorf("expected no earnings, got %d", n)
		}

		var gotProject projects.Project
		if err := db.First(&gotProject, project.ID).Error; err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		if !gotProject.IsPaid {
			t.Error("project should still be marked paid")
		}
	})

	t.Run("Given a reseller id pointing at a plain user When settled paid Then no earning is created", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		notReseller := seedUser(t, db, users.RoleUser)
		project := seedProject(t, db, owner.ID, &notReseller.ID)
		payment := seedPayment(t, db, project.ID, owner.ID, "100.00", "USD", "mt-order-4")

		if _, err := Settle(db, "mt-order-4", StatusPaid, nil, defaultRate); err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		if n := countEarnings(t, db, payment.ID); n != 0 {
			t.Errorf("expected no earnings for non-reseller attribution, got %d", n)
		}
	})
}

func TestSettle_NotFound(t *testing.T) {
	t.Run("Given no payment for the gateway id When settled Then NotFound and no writes", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		reseller := seedUser(t, db, users.RoleReseller)
		project := seedProject(t, db, owner.ID, &reseller.ID)
		seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-5")

		_, err := Settle(db, "unknown-id", StatusPaid, nil, defaultRate)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}

		var n int64
		db.Model(&ResellerEarning{}).Count(&n)
		if n != 0 {
			t.Errorf("expected no earnings, got %d", n)
		}

		var gotProject projects.Project
		if err := db.First(&gotProject, project.ID).Error; err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		if gotProject.IsPaid {
			t.Error("project must not be marked paid on a failed lookup")
		}
	})
}

func TestSettle_InvalidStatus(t *testing.T) {
	t.Run("Given an unmapped status value When settled Then InvalidArgument", func(t *testing.T) {
		db := newTestDB(t)

		_, err := Settle(db, "whatever", PaymentStatus("settlemint"), nil, defaultRate)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestSettle_FailedNotification(t *testing.T) {
	t.Run("Given a pending payment When settled failed Then no side effects fire", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		reseller := seedUser(t, db, users.RoleReseller)
		project := seedProject(t, db, owner.ID, &reseller.ID)
		payment := seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-6")

		settled, err := Settle(db, "mt-order-6", StatusFailed, []byte(`{"transaction_status":"deny"}`), defaultRate)
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		if settled.Status != StatusFailed {
			t.Errorf("expected status failed, got %s", settled.Status)
		}
		if settled.PaidAt != nil {
			t.Error("paid_at must stay null on a failed payment")
		}
		if n := countEarnings(t, db, payment.ID); n != 0 {
			t.Errorf("expected no earnings, got %d", n)
		}

		var gotProject projects.Project
		if err := db.First(&gotProject, project.ID).Error; err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		if gotProject.IsPaid {
			t.Error("project must stay unpaid after a failed notification")
		}
	})
}

func TestSettle_PaidThenRefunded(t *testing.T) {
	t.Run("Given a paid payment When a refund notification arrives Then paid_at clears but access and earning remain", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		reseller := seedUser(t, db, users.RoleReseller)
		project := seedProject(t, db, owner.ID, &reseller.ID)
		payment := seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-7")

		if _, err := Settle(db, "mt-order-7", StatusPaid, []byte(`{}`), defaultRate); err != nil {
			t.Fatalf("Settle paid failed: %v", err)
		}

		settled, err := Settle(db, "mt-order-7", StatusRefunded, []byte(`{"transaction_status":"refund"}`), defaultRate)
		if err != nil {
			t.Fatalf("Settle refund failed: %v", err)
		}

		if settled.Status != StatusRefunded {
			t.Errorf("expected status refunded, got %s", settled.Status)
		}
		if settled.PaidAt != nil {
			t.Error("paid_at must be null after refund")
		}

		// Refunds do not revoke access or claw back the commission.
		var gotProject projects.Project
		if err := db.First(&gotProject, project.ID).Error; err != nil {
			t.Fatalf("Failed to reload project: %v", err)
		}
		if !gotProject.IsPaid {
			t.Error("refund must not revoke project access")
		}
		if n := countEarnings(t, db, payment.ID); n != 1 {
			t.Errorf("refund must keep the earning, got %d rows", n)
		}
	})
}

func TestSettle_GatewayResponseOverwrite(t *testing.T) {
	t.Run("Given consecutive notifications Then the stored response is always the latest payload", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		project := seedProject(t, db, owner.ID, nil)
		payment := seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-8")

		first := []byte(`{"transaction_status":"pending","attempt":1}`)
		if _, err := Settle(db, "mt-order-8", StatusPending, first, defaultRate); err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		var got Payment
		if err := db.First(&got, payment.ID).Error; err != nil {
			t.Fatalf("Failed to reload payment: %v", err)
		}
		if string(got.GatewayResponse) != string(first) {
			t.Errorf("expected stored response %s, got %s", first, got.GatewayResponse)
		}

		second := []byte(`{"transaction_status":"settlement","attempt":2}`)
		if _, err := Settle(db, "mt-order-8", StatusPaid, second, defaultRate); err != nil {
			t.Fatalf("Settle failed: %v", err)
		}

		if err := db.First(&got, payment.ID).Error; err != nil {
			t.Fatalf("Failed to reload payment: %v", err)
		}
		if string(got.GatewayResponse) != string(second) {
			t.Errorf("expected stored response %s, got %s", second, got.GatewayResponse)
		}
	})
}

func TestSettle_PaidAtInvariant(t *testing.T) {
	statuses := []PaymentStatus{StatusPaid, StatusPending, StatusPaid, StatusFailed, StatusRefunded, StatusPaid}

	t.Run("Given any sequence of notifications Then paid_at is set iff status is paid", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedUser(t, db, users.RoleUser)
		project := seedProject(t, db, owner.ID, nil)
		seedPayment(t, db, project.ID, owner.ID, "150000", "IDR", "mt-order-9")

		for _, status := range statuses {
			settled, err := Settle(db, "mt-order-9", status, nil, defaultRate)
			if err != nil {
				t.Fatalf("Settle(%s) failed: %v", status, err)
			}
			if (settled.PaidAt != nil) != (status == StatusPaid) {
				t.Errorf("after settling %s: paid_at set = %v, want %v",
					status, settled.PaidAt != nil, status == StatusPaid)
			}
		}
	})
}
