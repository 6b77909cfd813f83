// Package runner is the host-side layer around solver: it turns raw numeric input
// into solver entries, owns one logical search slot, and drives batch sessions to
// completion without monopolizing the caller.
//
// Key features:
//   - BuildEntries: drop non-positive and over-target values, keep original positions.
//   - Slot: at most one batch session plus a cancellable one-shot search per slot.
//     Slots are ordinary values; independent searches use independent slots.
//   - Drive: step a Session (or a Slot) with a fixed node budget, optionally paced with a
//     token-bucket limiter, reporting every batch through a callback.
//   - Observer: hook for metrics (see package metrics); NoopObserver by default.
//
// Logging uses log/slog with a "component" attribute; per-step records are Debug.
package runner
