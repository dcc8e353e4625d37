package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSearch_CountsByOutcome(t *testing.T) {
	recorder := NewRecorder()

	recorder.RecordSearch(OutcomeOK, 120*time.Millisecond)
	recorder.RecordSearch(OutcomeOK, 80*time.Millisecond)
	recorder.RecordSearch(OutcomeNoResults, 40*time.Millisecond)

	if got := testutil.ToFloat64(recorder.searches.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("expected 2 ok searches, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.searches.WithLabelValues(OutcomeNoResults)); got != 1 {
		t.Errorf("expected 1 no_results search, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.searches.WithLabelValues(OutcomeAuthFailed)); got != 0 {
		t.Errorf("expected 0 auth_failed searches, got %v", got)
	}
}

func TestInterpreterDowngrade_Counts(t *testing.T) {
	recorder := NewRecorder()

	recorder.InterpreterDowngrade()
	recorder.InterpreterDowngrade()

	if got := testutil.ToFloat64(recorder.downgrades); got != 2 {
		t.Errorf("expected 2 downgrades, got %v", got)
	}
}

func TestNilRecorder_IsSafe(t *testing.T) {
	var recorder *Recorder

	recorder.RecordSearch(OutcomeOK, time.Second)
	recorder.InterpreterDowngrade()
}
