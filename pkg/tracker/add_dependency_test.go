//go:build unit

package tracker

import (
	"path/filepath"
	"testing"

	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/classtrim/classtrim/pkg/fs"
	"github.com/classtrim/classtrim/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTracker(t *testing.T, ctrl *gomock.Controller, params NewTrackerParams) Tracker {
	t.Helper()

	if params.FS == nil {
		mockFS := fs.NewMockFS(ctrl)
		mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
		params.FS = mockFS
	}
	if params.Engine == nil {
		params.Engine = engine.NewMockEngine(ctrl)
	}

	tracker, err := New(params)
	require.NoError(t, err)
	return tracker
}

func TestAddDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Logf("tracking dependency for minimization: %s", "/deps/guava.jar").Times(1)

	tracker := newTestTracker(t, ctrl, NewTrackerParams{
		ToMinimize: []string{"/deps/guava.jar", "/deps/commons.jar"},
		Logger:     mockLogger,
	})

	tracker.AddDependency("/deps/guava.jar")
	assert.Equal(t, []string{"/deps/guava.jar"}, tracker.Dependencies())
}

func TestAddDependency_IneligibleIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := newTestTracker(t, ctrl, NewTrackerParams{
		ToMinimize: []string{"/deps/guava.jar"},
	})

	tracker.AddDependency("/deps/api-exported.jar")
	assert.Empty(t, tracker.Dependencies())
}

func TestAddDependency_Monotonic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := newTestTracker(t, ctrl, NewTrackerParams{
		ToMinimize: []string{"/deps/guava.jar", "/deps/commons.jar"},
	})

	tracker.AddDependency("/deps/guava.jar")
	tracker.AddDependency("/deps/guava.jar")
	tracker.AddDependency("/deps/api-exported.jar")
	tracker.AddDependency("/deps/commons.jar")

	assert.Equal(t, []string{"/deps/commons.jar", "/deps/guava.jar"}, tracker.Dependencies())
}

func TestAddDependency_PathsAreCleaned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := newTestTracker(t, ctrl, NewTrackerParams{
		ToMinimize: []string{"/deps/guava.jar"},
	})

	tracker.AddDependency(filepath.Join("/deps", "sub", "..", "guava.jar"))
	assert.Equal(t, []string{"/deps/guava.jar"}, tracker.Dependencies())
}
