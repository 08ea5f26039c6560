package service

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Step transition helpers shared by both wizards. Next never advances past
// the final step, back never retreats past step 1.

func stepForward(step, maxStep int) int {
	if step >= maxStep {
		return maxStep
	}
	return step + 1
}

func stepBack(step int) int {
	if step <= 1 {
		return 1
	}
	return step - 1
}

// appendUnique appends value unless it is already present, preserving the
// order of prior entries. Values are trimmed; an empty value is a no-op.
func appendUnique(values []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

// removeValue removes value if present; removing an absent value leaves the
// slice unchanged.
func removeValue(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return values
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// waitSubmitDelay models the asynchronous persistence call's latency. It
// returns early with the context error when the caller goes away, so a
// cancelled submit never mutates anything.
func waitSubmitDelay(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
