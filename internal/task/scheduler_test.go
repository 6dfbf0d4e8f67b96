package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTask struct {
	name string
	spec string
	fn   func() error
	runs int
}

func (f *fakeTask) Name() string       { return f.name }
func (f *fakeTask) Spec() string       { return f.spec }
func (f *fakeTask) IsStartupRun() bool { return false }
func (f *fakeTask) Run(ctx context.Context) error {
	f.runs++
	return f.fn()
}

func TestAddTask_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	err := s.AddTask(&fakeTask{name: "bad", spec: "not a spec", fn: func() error { return nil }})
	require.Error(t, err)
}

func TestRunTask_RecoversPanic(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	ft := &fakeTask{name: "boom", spec: "@every 1h", fn: func() error { panic("boom") }}

	assert.NotPanics(t, func() { s.runTask(ft) })
	assert.Equal(t, 1, ft.runs)
}

func TestSyncTaskSpec(t *testing.T) {
	st := NewSyncTask(nil, 30*time.Minute, zap.NewNop())
	assert.Equal(t, "@every 30m0s", st.Spec())
	assert.True(t, st.IsStartupRun())

	s := NewScheduler(zap.NewNop())
	require.NoError(t, s.AddTask(st))
}
