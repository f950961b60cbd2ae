package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "candidate not found",
			},
			want: "candidate not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to process",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to process: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestStepConstructors(t *testing.T) {
	cause := errors.New("503 Service Unavailable")
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		step string
	}{
		{"fetch", FetchFailure("list_candidates", cause), ErrCodeFetch, "list_candidates"},
		{"mutation", MutationFailure("update_role", cause), ErrCodeMutation, "update_role"},
		{"partial cascade", PartialCascadeFailure("user_skills", cause), ErrCodePartialCascade, "user_skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Step != tt.step {
				t.Errorf("Step = %v, want %v", tt.err.Step, tt.step)
			}
			if !errors.Is(tt.err, cause) {
				t.Errorf("expected cause to be preserved")
			}
		})
	}
}

func TestIsMutationFailureIncludesPartialCascade(t *testing.T) {
	cause := errors.New("boom")
	if !IsMutationFailure(MutationFailure("invite", cause)) {
		t.Error("expected mutation failure to match")
	}
	if !IsMutationFailure(PartialCascadeFailure("personaldetails", cause)) {
		t.Error("expected partial cascade failure to count as mutation failure")
	}
	if IsPartialCascadeFailure(MutationFailure("invite", cause)) {
		t.Error("plain mutation failure must not be a partial cascade failure")
	}
	if IsMutationFailure(FetchFailure("list_candidates", cause)) {
		t.Error("fetch failure must not be a mutation failure")
	}
}

func TestPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("promote: %w", FetchFailure("list_candidates", errors.New("timeout")))

	if !IsFetchFailure(wrapped) {
		t.Error("IsFetchFailure should see through fmt.Errorf wrapping")
	}
	if got := GetStep(wrapped); got != "list_candidates" {
		t.Errorf("GetStep() = %q, want list_candidates", got)
	}
	if got := GetCode(wrapped); got != ErrCodeFetch {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeFetch)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "email failed \"email\" validation")
	if !IsValidation(err) {
		t.Error("expected validation error")
	}
	if got := GetField(err); got != "email" {
		t.Errorf("GetField() = %q, want email", got)
	}
}

func TestWrap_Nil(t *testing.T) {
	if got := Wrap(nil, ErrCodeInternal, "nothing"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
	if got := Wrapf(nil, ErrCodeInternal, "nothing %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestGetters_NonAppError(t *testing.T) {
	plain := errors.New("plain")
	if GetCode(plain) != "" || GetField(plain) != "" || GetStep(plain) != "" {
		t.Error("getters should return empty values for non-AppError")
	}
	if IsNotFound(plain) || IsUnauthorized(plain) || IsCanceled(plain) {
		t.Error("predicates should be false for non-AppError")
	}
}
