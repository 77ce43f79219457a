package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/studentportal-server/internal/model"
	"github.com/dtroode/studentportal-server/internal/results"
	"github.com/dtroode/studentportal-server/internal/testutil"
)

func newTestResults(t *testing.T) (*Results, *[]time.Duration) {
	t.Helper()
	var slept []time.Duration
	r := NewResults(results.Builtin(), DefaultResultsDelay, testutil.MakeNoopLogger())
	r.sleep = func(d time.Duration) { slept = append(slept, d) }
	return r, &slept
}

func TestResults_FetchByRollNumber(t *testing.T) {
	r, slept := newTestResults(t)

	rec, err := r.FetchByRollNumber("2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Ali Ahmed", rec.StudentName)
	assert.Len(t, rec.Subjects, 5)
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, *slept)
}

func TestResults_FetchByRollNumber_NotFound(t *testing.T) {
	r, slept := newTestResults(t)

	tests := []string{"9999-999", "2024-01", " 2024-001", ""}
	for _, roll := range tests {
		_, err := r.FetchByRollNumber(roll)
		require.Error(t, err, roll)
		assert.ErrorIs(t, err, model.ErrNoResults)
		assert.Equal(t, "No results found for this roll number.", err.Error())
	}
	assert.Len(t, *slept, len(tests), "delay applies to failures too")
}

func TestResults_FetchAll(t *testing.T) {
	r, slept := newTestResults(t)

	all := r.FetchAll()
	require.Len(t, all, 3)
	assert.Equal(t, "2024-003", all[2].RollNo)
	assert.Len(t, *slept, 1)
}

func TestResults_RecordsAreCopies(t *testing.T) {
	r, _ := newTestResults(t)

	rec, err := r.FetchByRollNumber("2024-002")
	require.NoError(t, err)
	rec.Subjects[0].Grade = "F"

	all := r.FetchAll()
	all[1].Subjects[1].Grade = "F"

	again, err := r.FetchByRollNumber("2024-002")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Subjects[0].Grade)
	assert.Equal(t, "A", again.Subjects[1].Grade)
}

func TestResults_RealDelay(t *testing.T) {
	r := NewResults(results.Builtin(), 20*time.Millisecond, testutil.MakeNoopLogger())

	start := time.Now()
	_, err := r.FetchByRollNumber("2024-003")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
