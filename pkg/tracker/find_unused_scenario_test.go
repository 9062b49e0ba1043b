//go:build integration

package tracker

import (
	"os"
	"testing"

	"github.com/classtrim/classtrim/pkg/collector"
	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Two first-party classes, A reachable and B referenced by nothing, zero
// dependencies: the analysis reports B unused and leaves A's processed bytes
// at its resolved output path.
func TestFindUnused_ReachableAndOrphanScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCollector := collector.NewMockCollector(ctrl)
	mockCollector.EXPECT().ProgramInputs(gomock.Any(), gomock.Any()).
		Return([]string{"/build/libs/app.jar"}, nil).Times(2)

	mockEngine := engine.NewMockEngine(ctrl)
	enumeration := mockEngine.EXPECT().Run(gomock.Any()).DoAndReturn(func(inv engine.Invocation) error {
		inv.ClassSink("com/example/A", nil)
		inv.ClassSink("com/example/B", nil)
		return nil
	})
	mockEngine.EXPECT().Run(gomock.Any()).DoAndReturn(func(inv engine.Invocation) error {
		inv.UsageSink("com.example.B")
		inv.UsageSink(engine.Separator)
		inv.ClassSink("com/example/A", []byte{0xCA, 0xFE, 0xBA, 0xBE})
		return nil
	}).After(enumeration)

	trk, err := New(NewTrackerParams{
		ClassDirs: []string{"/build/classes"},
		WorkDir:   t.TempDir(),
		Engine:    mockEngine,
		Collector: mockCollector,
	})
	require.NoError(t, err)

	unused, err := trk.FindUnused()
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"com.example.B": {}}, unused)

	// A was emitted and written; B was not.
	data, err := os.ReadFile(trk.OutputPath("com.example.A"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, data)

	_, err = os.Stat(trk.OutputPath("com.example.B"))
	assert.True(t, os.IsNotExist(err))
}
