package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestLogUseCaseObserver_WritesTextRecords(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "budget-view",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"project": "p1"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "import-project",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=budget-view")
	assert.Contains(t, out, "project=p1")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))

	rec := &recordingObserver{}
	assert.Same(t, rec, combineObservers([]UseCaseObserver{nil, rec}))

	other := &recordingObserver{}
	group := combineObservers([]UseCaseObserver{rec, nil, other})
	group.ObserveUseCase(context.Background(), UseCaseEvent{Name: "budget-view"})
	assert.Len(t, rec.events, 1)
	assert.Len(t, other.events, 1)
}

func TestLogUseCaseObserver_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "set-actual-amount",
		Success: true,
		Fields:  map[string]any{"project_id": "p1", "item_id": "i1"},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "item_id=i1"), strings.Index(out, "project_id=p1"))
}

func TestObserve_RecordsNamedError(t *testing.T) {
	rec := &recordingObserver{}
	boom := errors.New("boom")

	func() (err error) {
		defer observe(context.Background(), rec, "final-report", time.Now(), nil, &err)
		return boom
	}()

	if assert.Len(t, rec.events, 1) {
		assert.False(t, rec.events[0].Success)
		assert.ErrorIs(t, rec.events[0].Err, boom)
		assert.Equal(t, "final-report", rec.events[0].Name)
	}
}
