package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shootsuite/internal/domain"
)

func strPtr(s string) *string { return &s }

func timedJob(id, date, start, end string) domain.Job {
	return domain.Job{ID: id, Date: date, StartTime: start, EndTime: end, Status: domain.JobBooked}
}

func TestCheckBookingFreelancerOverlap(t *testing.T) {
	existing := []domain.Job{timedJob("j1", "2026-06-10", "10:00", "11:00")}

	cases := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"back to back after", "11:00", "12:00", false},
		{"back to back before", "09:00", "10:00", false},
		{"partial overlap", "10:30", "11:30", true},
		{"contained", "10:15", "10:45", true},
		{"containing", "09:00", "13:00", true},
		{"identical", "10:00", "11:00", true},
		{"disjoint", "14:00", "15:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := CheckBooking(Candidate{
				Date:      "2026-06-10",
				StartTime: tc.start,
				EndTime:   tc.end,
			}, existing, domain.AccountFreelancer)
			assert.Equal(t, tc.conflict, res.HasConflict)
		})
	}
}

func TestCheckBookingEmptyDayNoConflict(t *testing.T) {
	existing := []domain.Job{timedJob("j1", "2026-06-11", "10:00", "11:00")}

	res := CheckBooking(Candidate{Date: "2026-06-10", StartTime: "10:00", EndTime: "11:00"},
		existing, domain.AccountFreelancer)
	assert.False(t, res.HasConflict)
}

func TestCheckBookingMissingTimesSuppressPair(t *testing.T) {
	existing := []domain.Job{
		{ID: "j1", Date: "2026-06-10", Status: domain.JobBooked}, // all-day, no times
	}

	res := CheckBooking(Candidate{Date: "2026-06-10", StartTime: "10:00", EndTime: "11:00"},
		existing, domain.AccountFreelancer)
	assert.False(t, res.HasConflict)

	// candidate without times raises nothing either
	res = CheckBooking(Candidate{Date: "2026-06-10"},
		[]domain.Job{timedJob("j2", "2026-06-10", "10:00", "11:00")},
		domain.AccountFreelancer)
	assert.False(t, res.HasConflict)
}

func TestCheckBookingCancelledJobsIgnored(t *testing.T) {
	j := timedJob("j1", "2026-06-10", "10:00", "11:00")
	j.Status = domain.JobCancelled

	res := CheckBooking(Candidate{Date: "2026-06-10", StartTime: "10:30", EndTime: "11:30"},
		[]domain.Job{j}, domain.AccountFreelancer)
	assert.False(t, res.HasConflict)
}

func TestCheckBookingEditExcludesSelf(t *testing.T) {
	existing := []domain.Job{timedJob("j1", "2026-06-10", "10:00", "11:00")}

	res := CheckBooking(Candidate{
		Date:         "2026-06-10",
		StartTime:    "10:00",
		EndTime:      "11:00",
		ExcludeJobID: "j1",
	}, existing, domain.AccountFreelancer)
	assert.False(t, res.HasConflict)
}

func TestCheckBookingCompanyDuplicateAssignee(t *testing.T) {
	existing := []domain.Job{
		{ID: "j1", Date: "2026-06-10", AssigneeID: strPtr("m1"), Status: domain.JobBooked},
		{ID: "j2", Date: "2026-06-10", Status: domain.JobBooked,
			Assignments: []domain.TeamAssignment{{JobID: "j2", MemberID: "m2"}}},
	}

	res := CheckBooking(Candidate{Date: "2026-06-10", AssigneeID: "m1"}, existing, domain.AccountCompany)
	assert.True(t, res.HasConflict)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, "j1", res.Conflicts[0].JobID)

	// assignment table counts too
	res = CheckBooking(Candidate{Date: "2026-06-10", AssigneeID: "m2"}, existing, domain.AccountCompany)
	assert.True(t, res.HasConflict)

	// different member, no conflict
	res = CheckBooking(Candidate{Date: "2026-06-10", AssigneeID: "m3"}, existing, domain.AccountCompany)
	assert.False(t, res.HasConflict)

	// no assignee, no conflict
	res = CheckBooking(Candidate{Date: "2026-06-10"}, existing, domain.AccountCompany)
	assert.False(t, res.HasConflict)
}

func TestCheckBookingIdempotent(t *testing.T) {
	existing := []domain.Job{timedJob("j1", "2026-06-10", "10:00", "11:00")}
	c := Candidate{Date: "2026-06-10", StartTime: "10:30", EndTime: "11:30"}

	first := CheckBooking(c, existing, domain.AccountFreelancer)
	second := CheckBooking(c, existing, domain.AccountFreelancer)
	assert.Equal(t, first, second)
}

func TestDayHighlights(t *testing.T) {
	jobs := []domain.Job{
		timedJob("a", "2026-06-10", "09:00", "10:00"),
		timedJob("b", "2026-06-10", "14:00", "15:00"), // no overlap, still flagged
		timedJob("c", "2026-06-11", "09:00", "10:00"),
		{ID: "d", Date: "2026-06-12", Status: domain.JobCancelled},
		{ID: "e", Date: "2026-06-12", Status: domain.JobBooked},
	}

	flagged := DayHighlights(jobs)
	assert.True(t, flagged["2026-06-10"])
	assert.False(t, flagged["2026-06-11"])
	assert.False(t, flagged["2026-06-12"])
}

func TestMinuteOfDay(t *testing.T) {
	m, ok := domain.MinuteOfDay("15:04")
	assert.True(t, ok)
	assert.Equal(t, 15*60+4, m)

	for _, bad := range []string{"", "15", "24:00", "12:60", "ab:cd"} {
		_, ok := domain.MinuteOfDay(bad)
		assert.False(t, ok, bad)
	}
}
