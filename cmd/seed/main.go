package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shootsuite/internal/database"
	"shootsuite/internal/domain"
)

// Seeds a local database with two demo tenants: a freelancer and a small
// company, with enough jobs, invoices and payments to exercise the dashboard.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "shootsuite.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM deliverables")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM team_assignments")
	db.Exec("DELETE FROM team_members")
	db.Exec("DELETE FROM jobs")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM accounts")

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Account{
		ID:             uuid.NewString(),
		Email:          "admin@shootsuite.app",
		PasswordHash:   string(adminHash),
		Name:           "Platform Admin",
		Type:           domain.AccountFreelancer,
		Role:           domain.RoleAdmin,
		ApprovalStatus: domain.ApprovalApproved,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@shootsuite.app / admin123")

	soloHash, _ := bcrypt.GenerateFromPassword([]byte("solo123"), bcrypt.DefaultCost)
	solo := domain.Account{
		ID:             uuid.NewString(),
		Email:          "mira@miraphoto.com",
		PasswordHash:   string(soloHash),
		Name:           "Mira Chen",
		BusinessName:   "Mira Chen Photography",
		Type:           domain.AccountFreelancer,
		Role:           domain.RoleMember,
		ApprovalStatus: domain.ApprovalApproved,
		Phone:          "+1 415 555 0142",
	}
	db.Create(&solo)
	log.Println("Freelancer created: mira@miraphoto.com / solo123")

	studioHash, _ := bcrypt.GenerateFromPassword([]byte("studio123"), bcrypt.DefaultCost)
	studio := domain.Account{
		ID:             uuid.NewString(),
		Email:          "hello@northlightstudio.com",
		PasswordHash:   string(studioHash),
		Name:           "Jordan Reyes",
		BusinessName:   "Northlight Studio",
		Type:           domain.AccountCompany,
		Role:           domain.RoleMember,
		ApprovalStatus: domain.ApprovalApproved,
		Phone:          "+1 206 555 0178",
	}
	db.Create(&studio)
	log.Println("Company created: hello@northlightstudio.com / studio123")

	pendingHash, _ := bcrypt.GenerateFromPassword([]byte("pending123"), bcrypt.DefaultCost)
	db.Create(&domain.Account{
		ID:             uuid.NewString(),
		Email:          "new@agencyshots.com",
		PasswordHash:   string(pendingHash),
		Name:           "Sam Okafor",
		BusinessName:   "Agency Shots",
		Type:           domain.AccountCompany,
		Role:           domain.RoleMember,
		ApprovalStatus: domain.ApprovalPending,
	})

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	soloClients := []domain.Client{
		{ID: uuid.NewString(), AccountID: solo.ID, Name: "Ava & Tom Hartley", Email: "ava.hartley@gmail.com", Phone: "+1 415 555 0101"},
		{ID: uuid.NewString(), AccountID: solo.ID, Name: "Priya Nair", Email: "priya.nair@outlook.com", Phone: "+1 415 555 0133"},
	}
	studioClients := []domain.Client{
		{ID: uuid.NewString(), AccountID: studio.ID, Name: "Cascade Outdoor Co", Email: "marketing@cascadeoutdoor.com", Company: "Cascade Outdoor Co"},
		{ID: uuid.NewString(), AccountID: studio.ID, Name: "Lena Park", Email: "lena.park@icloud.com", Phone: "+1 206 555 0190"},
	}
	for i := range soloClients {
		db.Create(&soloClients[i])
	}
	for i := range studioClients {
		db.Create(&studioClients[i])
	}

	// ================== TEAM ==================
	log.Println("Creating team members...")

	shooters := []domain.TeamMember{
		{ID: uuid.NewString(), AccountID: studio.ID, Name: "Dana Whitfield", Email: "dana@northlightstudio.com", RoleTitle: "Lead Photographer"},
		{ID: uuid.NewString(), AccountID: studio.ID, Name: "Marcus Bell", Email: "marcus@northlightstudio.com", RoleTitle: "Second Shooter"},
	}
	for i := range shooters {
		db.Create(&shooters[i])
	}

	// ================== JOBS ==================
	log.Println("Creating jobs...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	lastMonth := time.Now().AddDate(0, -1, 0).Format("2006-01-02")

	wedding := domain.Job{
		ID:            uuid.NewString(),
		AccountID:     solo.ID,
		AccountType:   solo.Type,
		ClientID:      soloClients[0].ID,
		Title:         "Hartley Wedding",
		Date:          nextWeek,
		StartTime:     "14:00",
		EndTime:       "22:00",
		Location:      "Cavallo Point, Sausalito",
		PackageType:   "Full Day Wedding",
		Status:        domain.JobBooked,
		Price:         4800,
		DepositAmount: 1200,
	}
	seedJob(db, &wedding)

	portrait := domain.Job{
		ID:          uuid.NewString(),
		AccountID:   solo.ID,
		AccountType: solo.Type,
		ClientID:    soloClients[1].ID,
		Title:       "Nair Family Portraits",
		Date:        tomorrow,
		StartTime:   "10:00",
		EndTime:     "11:30",
		Location:    "Golden Gate Park",
		PackageType: "Mini Session",
		Status:      domain.JobBooked,
		Price:       450,
	}
	seedJob(db, &portrait)

	delivered := domain.Job{
		ID:          uuid.NewString(),
		AccountID:   solo.ID,
		AccountType: solo.Type,
		ClientID:    soloClients[1].ID,
		Title:       "Nair Headshots",
		Date:        lastMonth,
		StartTime:   "09:00",
		EndTime:     "10:00",
		PackageType: "Headshots",
		Status:      domain.JobDelivered,
		Price:       300,
	}
	seedJob(db, &delivered)

	campaign := domain.Job{
		ID:          uuid.NewString(),
		AccountID:   studio.ID,
		AccountType: studio.Type,
		ClientID:    studioClients[0].ID,
		Title:       "Cascade Fall Campaign",
		Date:        nextWeek,
		StartTime:   "08:00",
		EndTime:     "17:00",
		AssigneeID:  &shooters[0].ID,
		Location:    "Snoqualmie Pass",
		PackageType: "Commercial Day Rate",
		Status:      domain.JobBooked,
		Price:       6500,
	}
	seedJob(db, &campaign)
	db.Create(&domain.TeamAssignment{ID: uuid.NewString(), JobID: campaign.ID, MemberID: shooters[1].ID})

	// ================== INVOICES & PAYMENTS ==================
	log.Println("Creating invoices and payments...")

	weddingInvoice := domain.Invoice{
		ID:            uuid.NewString(),
		AccountID:     solo.ID,
		JobID:         wedding.ID,
		InvoiceNumber: "INV-2026-0001",
		TotalAmount:   4800,
		PaidAmount:    1200,
		Balance:       3600,
		Status:        domain.InvoicePartiallyPaid,
		DueDate:       ptrTime(time.Now().AddDate(0, 0, 5)),
	}
	db.Create(&weddingInvoice)
	db.Create(&domain.Payment{
		ID:        uuid.NewString(),
		AccountID: solo.ID,
		JobID:     wedding.ID,
		InvoiceID: &weddingInvoice.ID,
		Amount:    1200,
		Type:      domain.PaymentDeposit,
		Method:    domain.MethodBankTransfer,
		Status:    domain.PaymentCompleted,
		Date:      time.Now().AddDate(0, 0, -10).Format("2006-01-02"),
	})

	headshotInvoice := domain.Invoice{
		ID:            uuid.NewString(),
		AccountID:     solo.ID,
		JobID:         delivered.ID,
		InvoiceNumber: "INV-2026-0002",
		TotalAmount:   300,
		PaidAmount:    300,
		Balance:       0,
		Status:        domain.InvoicePaid,
	}
	db.Create(&headshotInvoice)
	db.Create(&domain.Payment{
		ID:            uuid.NewString(),
		AccountID:     solo.ID,
		JobID:         delivered.ID,
		InvoiceID:     &headshotInvoice.ID,
		Amount:        300,
		Type:          domain.PaymentFinal,
		Method:        domain.MethodStripe,
		Status:        domain.PaymentCompleted,
		Date:          lastMonth,
		TransactionID: "txn_demo_0002",
	})

	db.Create(&domain.Invoice{
		ID:            uuid.NewString(),
		AccountID:     studio.ID,
		JobID:         campaign.ID,
		InvoiceNumber: "INV-2026-0001",
		TotalAmount:   6500,
		Balance:       6500,
		Status:        domain.InvoiceSent,
		DueDate:       ptrTime(time.Now().AddDate(0, 0, 14)),
	})

	// ================== DELIVERABLES ==================
	log.Println("Creating deliverables...")

	db.Create(&domain.Deliverable{
		ID:        uuid.NewString(),
		AccountID: solo.ID,
		JobID:     delivered.ID,
		Title:     "Final Headshots",
		URL:       "https://gallery.miraphoto.com/nair-headshots",
		Locked:    false,
	})
	db.Create(&domain.Deliverable{
		ID:        uuid.NewString(),
		AccountID: solo.ID,
		JobID:     wedding.ID,
		Title:     "Wedding Sneak Peek",
		URL:       "https://gallery.miraphoto.com/hartley-preview",
		Password:  "hartley2026",
		Locked:    true,
	})

	// ================== EXPENSES & TASKS ==================
	log.Println("Creating expenses and tasks...")

	db.Create(&domain.Expense{
		ID:        uuid.NewString(),
		AccountID: solo.ID,
		JobID:     wedding.ID,
		Category:  "Contractors",
		Amount:    600,
		Date:      nextWeek,
		Notes:     "Second shooter day rate",
	})
	db.Create(&domain.Task{
		ID:        uuid.NewString(),
		AccountID: solo.ID,
		JobID:     wedding.ID,
		Text:      "Confirm timeline with planner",
		DueDate:   ptrTime(time.Now().AddDate(0, 0, 3)),
	})
	db.Create(&domain.Task{
		ID:        uuid.NewString(),
		AccountID: studio.ID,
		JobID:     campaign.ID,
		Text:      "Scout location access road",
		Done:      true,
	})

	log.Println("Seed complete.")
}

// seedJob fills the minute columns the way the job repository does on writes.
func seedJob(db *gorm.DB, j *domain.Job) {
	s, okS := domain.MinuteOfDay(j.StartTime)
	e, okE := domain.MinuteOfDay(j.EndTime)
	if okS && okE {
		j.StartMinute, j.EndMinute = &s, &e
	}
	db.Create(j)
}

func ptrTime(t time.Time) *time.Time { return &t }
