package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"shootsuite/internal/domain"
	"shootsuite/internal/repository"
)

type JobLister interface {
	List(ctx context.Context, accountID string, f repository.JobFilter) ([]domain.Job, error)
}

type ClientLister interface {
	List(ctx context.Context, accountID, search string, limit, offset int) ([]domain.Client, error)
}

type PaymentLister interface {
	ListByJob(ctx context.Context, jobID string) ([]domain.Payment, error)
}

var ErrUnknownEntity = fmt.Errorf("unknown export entity")

// Service renders tenant data as CSV downloads.
type Service struct {
	jobs     JobLister
	clients  ClientLister
	payments PaymentLister
}

func NewService(jobs JobLister, clients ClientLister, payments PaymentLister) *Service {
	return &Service{jobs: jobs, clients: clients, payments: payments}
}

// Export returns the CSV bytes and suggested filename for one entity type.
func (s *Service) Export(ctx context.Context, accountID, entity string) ([]byte, string, error) {
	switch entity {
	case "jobs":
		data, err := s.exportJobs(ctx, accountID)
		return data, "jobs.csv", err
	case "clients":
		data, err := s.exportClients(ctx, accountID)
		return data, "clients.csv", err
	case "payments":
		data, err := s.exportPayments(ctx, accountID)
		return data, "payments.csv", err
	}
	return nil, "", ErrUnknownEntity
}

func (s *Service) exportJobs(ctx context.Context, accountID string) ([]byte, error) {
	jobs, err := s.jobs.List(ctx, accountID, repository.JobFilter{})
	if err != nil {
		return nil, err
	}

	return writeCSV(
		[]string{"id", "title", "client", "date", "start_time", "end_time", "status", "location", "package", "price", "deposit"},
		len(jobs),
		func(i int) []string {
			j := jobs[i]
			clientName := ""
			if j.Client != nil {
				clientName = j.Client.Name
			}
			return []string{
				j.ID, j.Title, clientName, j.Date, j.StartTime, j.EndTime,
				string(j.Status), j.Location, j.PackageType,
				formatAmount(j.Price), formatAmount(j.DepositAmount),
			}
		})
}

func (s *Service) exportClients(ctx context.Context, accountID string) ([]byte, error) {
	clients, err := s.clients.List(ctx, accountID, "", 0, 0)
	if err != nil {
		return nil, err
	}

	return writeCSV(
		[]string{"id", "name", "email", "phone", "company", "address"},
		len(clients),
		func(i int) []string {
			c := clients[i]
			return []string{c.ID, c.Name, c.Email, c.Phone, c.Company, c.Address}
		})
}

func (s *Service) exportPayments(ctx context.Context, accountID string) ([]byte, error) {
	jobs, err := s.jobs.List(ctx, accountID, repository.JobFilter{})
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, j := range jobs {
		payments, err := s.payments.ListByJob(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			rows = append(rows, []string{
				p.ID, j.ID, j.Title, p.Date,
				formatAmount(p.Amount), string(p.Type), string(p.Method), string(p.Status),
				p.TransactionID,
			})
		}
	}

	return writeCSV(
		[]string{"id", "job_id", "job_title", "date", "amount", "type", "method", "status", "transaction_id"},
		len(rows),
		func(i int) []string { return rows[i] })
}

func writeCSV(header []string, n int, row func(i int) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
