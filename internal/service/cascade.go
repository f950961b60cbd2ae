package service

import (
	"context"
	"fmt"

	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
)

// StepStatus is the outcome of one delete step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepResult records what happened to one resource during a cascade.
type StepResult struct {
	Resource model.Resource `json:"resource"`
	Status   StepStatus     `json:"status"`
	Err      error          `json:"-"`
}

// CascadeReport is the per-step record of a candidate delete. A failed report
// can be handed back to ResumeRemove to retry from the failed step.
type CascadeReport struct {
	CandidateID model.CandidateID `json:"candidate_id"`
	Steps       []StepResult      `json:"steps"`
}

func newCascadeReport(id model.CandidateID) CascadeReport {
	steps := make([]StepResult, len(model.CascadeOrder))
	for i, r := range model.CascadeOrder {
		steps[i] = StepResult{Resource: r, Status: StepPending}
	}
	return CascadeReport{CandidateID: id, Steps: steps}
}

func (r CascadeReport) clone() CascadeReport {
	r.Steps = append([]StepResult(nil), r.Steps...)
	return r
}

// Completed reports whether every step succeeded.
func (r CascadeReport) Completed() bool {
	for _, s := range r.Steps {
		if s.Status != StepSucceeded {
			return false
		}
	}
	return len(r.Steps) > 0
}

// FailedStep returns the index of the step that stopped the cascade.
func (r CascadeReport) FailedStep() (int, bool) {
	for i, s := range r.Steps {
		if s.Status == StepFailed {
			return i, true
		}
	}
	return 0, false
}

func (r CascadeReport) anySucceeded() bool {
	for _, s := range r.Steps {
		if s.Status == StepSucceeded {
			return true
		}
	}
	return false
}

// Remove deletes a candidate and every dependent record in CascadeOrder,
// stopping at the first failing step. On failure the row stays in the local
// list and a single aggregate error names the failed step.
func (s *CandidateStore) Remove(ctx context.Context, id model.CandidateID) (CascadeReport, error) {
	if id == "" {
		return CascadeReport{}, apperrors.ValidationField("id", "candidate id is required")
	}
	return s.runCascade(ctx, newCascadeReport(id), 0)
}

// ResumeRemove retries a failed cascade starting from its failed step. A
// completed report is returned unchanged.
func (s *CandidateStore) ResumeRemove(ctx context.Context, report CascadeReport) (CascadeReport, error) {
	if report.Completed() {
		return report, nil
	}
	if report.CandidateID == "" || len(report.Steps) != len(model.CascadeOrder) {
		return report, apperrors.Validation("cascade report does not describe a candidate delete")
	}
	from, ok := report.FailedStep()
	if !ok {
		from = 0
	}
	return s.runCascade(ctx, report.clone(), from)
}

func (s *CandidateStore) runCascade(ctx context.Context, report CascadeReport, from int) (CascadeReport, error) {
	id := report.CandidateID
	for i := from; i < len(report.Steps); i++ {
		step := &report.Steps[i]
		if step.Status == StepSucceeded {
			continue
		}
		if err := s.api.DeleteResource(ctx, step.Resource, id); err != nil {
			step.Status = StepFailed
			step.Err = err
			for j := i + 1; j < len(report.Steps); j++ {
				report.Steps[j].Status = StepSkipped
				report.Steps[j].Err = nil
			}

			var aggregate *apperrors.AppError
			if report.anySucceeded() {
				aggregate = apperrors.PartialCascadeFailure(string(step.Resource), err)
			} else {
				aggregate = apperrors.MutationFailure(string(step.Resource), err)
			}
			s.observeMutation("remove", "failure")
			if s.logger != nil {
				s.logger.Warn("candidate delete stopped",
					"id", id, "step", step.Resource, "error", err)
			}
			return report, fmt.Errorf("remove candidate %s: %w", id, aggregate)
		}
		step.Status = StepSucceeded
		step.Err = nil
	}

	s.dropLocal(id)
	s.observeMutation("remove", "success")
	if s.logger != nil {
		s.logger.Info("candidate deleted", "id", id)
	}
	return report, nil
}
