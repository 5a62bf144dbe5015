package report

import (
	"context"
	"time"

	"shootsuite/internal/domain"
	"shootsuite/internal/repository"
)

type PaymentSummer interface {
	SumCompletedForAccount(ctx context.Context, accountID, dateFrom, dateTo string) (float64, error)
}

type ExpenseSummer interface {
	SumForAccount(ctx context.Context, accountID, dateFrom, dateTo string) (float64, error)
}

type JobLister interface {
	List(ctx context.Context, accountID string, f repository.JobFilter) ([]domain.Job, error)
}

type FinanceQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

type MonthBreakdown struct {
	Month     string  `json:"month"`
	Booked    float64 `json:"booked"`
	Collected float64 `json:"collected"`
}

type FinanceSummary struct {
	From        string           `json:"from"`
	To          string           `json:"to"`
	BookedTotal float64          `json:"booked_total"`
	Collected   float64          `json:"collected"`
	Outstanding float64          `json:"outstanding"`
	Expenses    float64          `json:"expenses"`
	Net         float64          `json:"net"`
	JobCount    int              `json:"job_count"`
	Months      []MonthBreakdown `json:"months"`
}

type Service struct {
	payments PaymentSummer
	expenses ExpenseSummer
	jobs     JobLister
}

func NewService(payments PaymentSummer, expenses ExpenseSummer, jobs JobLister) *Service {
	return &Service{payments: payments, expenses: expenses, jobs: jobs}
}

// Finance aggregates booked revenue, collected payments and expenses over a
// date range. Cancelled jobs are excluded from revenue; refunds are already
// excluded from the collected sum.
func (s *Service) Finance(ctx context.Context, accountID string, q FinanceQuery) (*FinanceSummary, error) {
	jobs, err := s.jobs.List(ctx, accountID, repository.JobFilter{
		DateFrom: q.From,
		DateTo:   q.To,
	})
	if err != nil {
		return nil, err
	}

	collected, err := s.payments.SumCompletedForAccount(ctx, accountID, q.From, q.To)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.SumForAccount(ctx, accountID, q.From, q.To)
	if err != nil {
		return nil, err
	}

	summary := &FinanceSummary{
		From:      q.From,
		To:        q.To,
		Collected: collected,
		Expenses:  expenses,
	}

	bookedByMonth := make(map[string]float64)
	for _, j := range jobs {
		if j.Status == domain.JobCancelled {
			continue
		}
		summary.JobCount++
		summary.BookedTotal += j.Price
		bookedByMonth[monthOf(j.Date)] += j.Price
	}

	for m := monthOf(q.From); m != "" && m <= monthOf(q.To); m = nextMonth(m) {
		first, last := monthBounds(m)
		monthCollected, err := s.payments.SumCompletedForAccount(ctx, accountID, first, last)
		if err != nil {
			return nil, err
		}
		summary.Months = append(summary.Months, MonthBreakdown{
			Month:     m,
			Booked:    bookedByMonth[m],
			Collected: monthCollected,
		})
	}

	summary.Outstanding = summary.BookedTotal - summary.Collected
	if summary.Outstanding < 0 {
		summary.Outstanding = 0
	}
	summary.Net = summary.Collected - summary.Expenses
	return summary, nil
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func nextMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 1, 0).Format("2006-01")
}

func monthBounds(month string) (string, string) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", ""
	}
	first := t.Format("2006-01-02")
	last := t.AddDate(0, 1, -1).Format("2006-01-02")
	return first, last
}
