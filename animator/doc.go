// Package animator drives per-shape fold/unfold playback.
//
// An Animator holds one Animation per registered Shape. Each call to Update
// advances every animation by one tick:
//
//	progress < 0      revert the shape and clamp progress to 0
//	0 <= progress < 1 re-derive the pose from rest with the selected
//	                  algorithm, then advance progress by
//	                  speed / FrameNormalization unless paused
//	progress >= 1     clamp to 1 and pose fully unfolded with
//	                  fold.Synchronized
//
// Poses are always re-derived from the rest pose, never accumulated, so
// scrubbing backwards or switching algorithms mid-flight is exact.
//
// The Animator is single-threaded: Update and the Animation controls must be
// called from the same goroutine (typically the render loop). After Update the
// caller re-uploads vertex data; WithOnFrame hooks that step.
package animator
