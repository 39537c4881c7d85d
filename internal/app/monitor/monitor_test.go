package monitor

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	assert.NotNil(t, NewMonitor())
}

func Test_GetStats_InvalidPID(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "Zero PID", pid: 0},
		{name: "Negative PID", pid: -1},
		{name: "Out of range PID", pid: math.MaxInt32 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(context.Background(), tt.pid)

			assert.NoError(t, err)
			assert.Equal(t, Stats{}, stats)
		})
	}
}

func Test_GetStats_CurrentProcess(t *testing.T) {
	m := NewMonitor()

	stats, err := m.GetStats(context.Background(), os.Getpid())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.MEM, 0.0)
}

func Test_GetStats_MissingProcess(t *testing.T) {
	m := NewMonitor()

	_, err := m.GetStats(context.Background(), math.MaxInt32-7)

	assert.Error(t, err)
}
