package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowStatusFiltersEvents(t *testing.T) {
	target := filepath.Join("dir", "target")
	events := make(chan fsnotify.Event, 3)
	errs := make(chan error)
	events <- fsnotify.Event{Name: filepath.Join("dir", "other"), Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Create}
	events <- fsnotify.Event{Name: target + string(filepath.Separator), Op: fsnotify.Chmod}

	calls := 0
	err := followStatus(context.Background(), events, errs, target, 2, func() (bool, error) {
		calls++
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "one initial emit plus one per matching event")
}

func TestFollowStatusCountsOnlyChanges(t *testing.T) {
	target := filepath.Join("dir", "target")
	events := make(chan fsnotify.Event, 4)
	for i := 0; i < 4; i++ {
		events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	}
	close(events)

	// Initial emit, then events alternate between unchanged and changed.
	results := []bool{true, false, true, false, true}
	calls := 0
	err := followStatus(context.Background(), events, make(chan error), target, 2, func() (bool, error) {
		changed := results[calls]
		calls++
		return changed, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, calls, "unchanged emits must not count toward the limit")
}

func TestFollowStatusStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := followStatus(ctx, make(chan fsnotify.Event), make(chan error), "/target", 0, func() (bool, error) { return true, nil })
	assert.NoError(t, err)
}

func TestFollowStatusWatcherError(t *testing.T) {
	errs := make(chan error, 1)
	errs <- errors.New("overflow")

	err := followStatus(context.Background(), make(chan fsnotify.Event), errs, "/target", 0, func() (bool, error) { return true, nil })
	assert.ErrorContains(t, err, "overflow")
}

func TestStatusPrinterRequeries(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a.txt")

	var buf bytes.Buffer
	emit := statusPrinter(&buf, target)

	changed, err := emit()
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = emit()
	require.NoError(t, err)
	assert.False(t, changed, "unchanged status is not printed again")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	changed, err = emit()
	require.NoError(t, err)
	assert.True(t, changed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0x0000000000000000\t0", lines[0])
	assert.Equal(t, "0x4000000000000000\tVALID", lines[1])
}
