package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/mrraghuvarun/talent/internal/errors"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{name: "plain error", err: errors.New("boom"), wantCode: 1, wantOut: "boom\n"},
		{name: "canceled", err: fmt.Errorf("list: %w", context.Canceled), wantCode: 130, wantOut: "canceled\n"},
		{name: "app canceled", err: apperrors.Wrap(errors.New("x"), apperrors.ErrCodeCanceled, "request canceled"), wantCode: 130, wantOut: "canceled\n"},
		{name: "validation", err: apperrors.ValidationField("id", "candidate id is required"), wantCode: 2},
		{name: "usage", err: usageError("bad flag %s", "--x"), wantCode: 2, wantOut: "bad flag --x\n"},
		{name: "silent exit", err: &exitError{code: 3, silent: true}, wantCode: 3, wantOut: ""},
		{name: "exit without cause", err: &exitError{code: 4}, wantCode: 4, wantOut: "exit 4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := exitCodeForError(tt.err, &out)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" || tt.wantCode == 3 {
				assert.Equal(t, tt.wantOut, out.String())
			}
		})
	}
}

func TestRunMain(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, runMain(func() error { return nil }, &out))
	assert.Equal(t, 1, runMain(func() error { return errors.New("nope") }, &out))
	assert.Equal(t, "nope\n", out.String())
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	ee := &exitError{code: 2, err: cause}
	assert.ErrorIs(t, ee, cause)

	var nilErr *exitError
	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
}
