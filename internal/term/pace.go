package term

import (
	"context"
	"time"
)

// FrameDuration returns the length of one frame at fps. A non-positive fps
// gives zero.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// SleepFPS sleeps for the rest of the current frame, given how long the
// frame's work took. It reports true when the work overran the frame, in
// which case the caller should skip rendering the next one. It returns
// early with false when ctx is done.
func SleepFPS(ctx context.Context, fps int, elapsed time.Duration) bool {
	frame := FrameDuration(fps)
	if elapsed >= frame {
		return true
	}

	timer := time.NewTimer(frame - elapsed)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return false
}
