package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adobaai/functional/internal/company"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	require.NoError(t, run(l, "Engineering", 15))
	out := buf.String()
	assert.Contains(t, out, `msg="old timers (imperative)" department=Engineering count=2`)
	assert.Contains(t, out, `msg="old timers (functional)" department=Engineering count=2`)
	assert.Contains(t, out, "Joe Engineer")
	assert.Contains(t, out, "Bob Engineer")
	// Joe and Bob both have 29 years; the later one is reported.
	assert.Contains(t, out, `msg="longest tenure" name="Bob Engineer" years=29`)
}

func TestRunNoMatches(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	require.NoError(t, run(l, "Marketing", 15))
	assert.Contains(t, buf.String(), `msg="old timers (functional)" department=Marketing count=0`)
	assert.NotContains(t, buf.String(), "longest tenure")
}

func TestRunUnknownDepartment(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.ErrorIs(t, run(l, "Legal", 15), company.ErrNotFound)
}
