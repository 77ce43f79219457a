package service

import (
	"slices"
	"time"

	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/model"
)

// DefaultResultsDelay is the simulated latency of every results query.
const DefaultResultsDelay = 500 * time.Millisecond

// Results answers queries over a fixed dataset. Every query waits for
// the configured delay first; the wait cannot be cancelled.
type Results struct {
	records []model.ResultRecord
	delay   time.Duration
	sleep   func(time.Duration)
	logger  *logger.Logger
}

func NewResults(records []model.ResultRecord, delay time.Duration, logger *logger.Logger) *Results {
	return &Results{
		records: cloneRecords(records),
		delay:   delay,
		sleep:   time.Sleep,
		logger:  logger,
	}
}

// FetchByRollNumber returns the record whose roll number matches exactly.
func (s *Results) FetchByRollNumber(rollNo string) (model.ResultRecord, error) {
	s.sleep(s.delay)

	for _, r := range s.records {
		if r.RollNo == rollNo {
			return cloneRecord(r), nil
		}
	}

	s.logger.Debug("Results: roll number not found",
		"roll_no", rollNo)

	return model.ResultRecord{}, model.ErrNoResults
}

// FetchAll returns the whole dataset. Callers restrict who may see it.
func (s *Results) FetchAll() []model.ResultRecord {
	s.sleep(s.delay)
	return cloneRecords(s.records)
}

func cloneRecords(records []model.ResultRecord) []model.ResultRecord {
	out := make([]model.ResultRecord, len(records))
	for i, r := range records {
		out[i] = cloneRecord(r)
	}
	return out
}

func cloneRecord(r model.ResultRecord) model.ResultRecord {
	r.Subjects = slices.Clone(r.Subjects)
	return r
}
