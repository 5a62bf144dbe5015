// Package schedule holds the booking conflict detector: pure functions over
// already-fetched jobs, re-run on every relevant change and never persisted.
package schedule

import (
	"fmt"

	"shootsuite/internal/domain"
)

// Candidate is a proposed booking as entered in the creation form. Times and
// assignee are optional; their absence silently narrows which policy branch
// applies. ExcludeJobID makes edits skip self-comparison.
type Candidate struct {
	Date         string
	StartTime    string
	EndTime      string
	AssigneeID   string
	ExcludeJobID string
}

// Conflict names one existing job the candidate collides with, plus a
// human-readable remedy.
type Conflict struct {
	JobID      string `json:"job_id"`
	JobTitle   string `json:"job_title,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

type Result struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts,omitempty"`
}

// CheckBooking applies the account-type policy pairwise against every
// existing job on the candidate's date. Freelancers conflict on overlapping
// half-open time intervals; companies on a duplicate assignee. The check is
// advisory: it warns, it never rejects.
func CheckBooking(c Candidate, existing []domain.Job, accountType domain.AccountType) Result {
	var res Result

	for _, job := range existing {
		if job.Date != c.Date || job.ID == c.ExcludeJobID {
			continue
		}
		if job.Status == domain.JobCancelled {
			continue
		}

		switch accountType {
		case domain.AccountFreelancer:
			if conflictsByTime(c, job) {
				res.Conflicts = append(res.Conflicts, Conflict{
					JobID:    job.ID,
					JobTitle: job.Title,
					Message: fmt.Sprintf("Timeslot conflict with existing booking %s–%s on %s.",
						job.StartTime, job.EndTime, job.Date),
					Suggestion: "Adjust the start or end time to avoid overlap.",
				})
			}
		case domain.AccountCompany:
			if conflictsByAssignee(c, job) {
				res.Conflicts = append(res.Conflicts, Conflict{
					JobID:      job.ID,
					JobTitle:   job.Title,
					Message:    fmt.Sprintf("The selected team member is already assigned to another job on %s.", job.Date),
					Suggestion: "Assign a different team member to avoid conflicts.",
				})
			}
		}
	}

	res.HasConflict = len(res.Conflicts) > 0
	return res
}

// conflictsByTime uses half-open interval semantics: an interval ending
// exactly when the other starts is not a conflict. Pairs where either side
// lacks a start or end time raise nothing.
func conflictsByTime(c Candidate, job domain.Job) bool {
	cs, ok := domain.MinuteOfDay(c.StartTime)
	if !ok {
		return false
	}
	ce, ok := domain.MinuteOfDay(c.EndTime)
	if !ok {
		return false
	}
	js, ok := domain.MinuteOfDay(job.StartTime)
	if !ok {
		return false
	}
	je, ok := domain.MinuteOfDay(job.EndTime)
	if !ok {
		return false
	}
	return cs < je && js < ce
}

// conflictsByAssignee matches the candidate's assignee against the existing
// job's primary assignee and its team assignments. No assignee, no conflict.
func conflictsByAssignee(c Candidate, job domain.Job) bool {
	if c.AssigneeID == "" {
		return false
	}
	if job.AssigneeID != nil && *job.AssigneeID == c.AssigneeID {
		return true
	}
	for _, a := range job.Assignments {
		if a.MemberID == c.AssigneeID {
			return true
		}
	}
	return false
}

// DayHighlights flags every date carrying two or more non-cancelled jobs.
// This is deliberately coarser than CheckBooking: the calendar wants a cheap
// "busy day" hint, not a pairwise verdict, so the two checks stay separate.
func DayHighlights(jobs []domain.Job) map[string]bool {
	counts := make(map[string]int)
	for _, j := range jobs {
		if j.Date == "" || j.Status == domain.JobCancelled {
			continue
		}
		counts[j.Date]++
	}

	flagged := make(map[string]bool)
	for date, n := range counts {
		if n >= 2 {
			flagged[date] = true
		}
	}
	return flagged
}
