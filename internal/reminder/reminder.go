package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
)

type JobLister interface {
	ListAllOnDate(ctx context.Context, date string) ([]domain.Job, error)
}

type InvoiceSweeper interface {
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
}

// Scheduler runs the daily background sweeps: session reminders to clients
// the day before a shoot, and relabelling unpaid invoices as Overdue once
// their due date passes.
type Scheduler struct {
	cron     *cron.Cron
	jobs     JobLister
	invoices InvoiceSweeper
	email    *notification.EmailSender
	sms      *notification.SMSSender
}

func NewScheduler(jobs JobLister, invoices InvoiceSweeper, email *notification.EmailSender, sms *notification.SMSSender) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		jobs:     jobs,
		invoices: invoices,
		email:    email,
		sms:      sms,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 9 * * *", s.runSessionReminders); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("30 0 * * *", s.runOverdueSweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSessionReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	jobs, err := s.jobs.ListAllOnDate(ctx, tomorrow)
	if err != nil {
		log.Printf("reminder_sweep_failed date=%s err=%v", tomorrow, err)
		return
	}

	sent := 0
	for _, j := range jobs {
		if j.Client == nil {
			continue
		}
		if j.Client.Email != "" {
			if err := s.email.SendSessionReminder(j.Client.Email, j.Client.Name, j.Date, j.StartTime, j.Location); err != nil {
				log.Printf("reminder_email_failed job=%s err=%v", j.ID, err)
			} else {
				sent++
			}
		}
		if j.Client.Phone != "" && s.sms.Enabled() {
			if err := s.sms.SendSessionReminder(j.Client.Phone, j.Client.Name, j.Date, j.StartTime); err != nil {
				log.Printf("reminder_sms_failed job=%s err=%v", j.ID, err)
			}
		}
	}
	log.Printf("reminder_sweep date=%s jobs=%d emails_sent=%d", tomorrow, len(jobs), sent)
}

func (s *Scheduler) runOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	overdue, err := s.invoices.ListOverdue(ctx, time.Now())
	if err != nil {
		log.Printf("overdue_sweep_failed err=%v", err)
		return
	}

	for _, inv := range overdue {
		if err := s.invoices.UpdateStatus(ctx, inv.ID, domain.InvoiceOverdue); err != nil {
			log.Printf("overdue_update_failed invoice=%s err=%v", inv.ID, err)
		}
	}
	if len(overdue) > 0 {
		log.Printf("overdue_sweep marked=%d", len(overdue))
	}
}
