package gesture

import (
	"testing"
	"time"

	"github.com/dshills/inputkit/sched"
)

func tick(dx, dy float64, ms int) WheelEvent {
	return WheelEvent{DeltaX: dx, DeltaY: dy, Time: at(ms)}
}

func TestWheelBurst(t *testing.T) {
	ms := sched.NewManual()
	wheel := NewWheel(DefaultWheelConfig(), ms)

	starts := 0
	var lastTotalY float64
	var endTotalY float64
	ends := 0
	wheel.OnStart = func() { starts++ }
	wheel.OnScroll = func(_, _, _, totalY float64) { lastTotalY = totalY }
	wheel.OnEnd = func(_, totalY float64) { ends++; endTotalY = totalY }

	wheel.HandleWheel(tick(0, 1, 0))
	ms.Advance(50 * time.Millisecond)
	wheel.HandleWheel(tick(0, 2, 50))
	ms.Advance(50 * time.Millisecond)
	wheel.HandleWheel(tick(0, 3, 100))

	if starts != 1 {
		t.Errorf("starts = %d, want 1 for a continuous burst", starts)
	}
	if lastTotalY != 6 {
		t.Errorf("running total = %v, want 6", lastTotalY)
	}
	if ends != 0 {
		t.Fatalf("burst ended while ticks kept arriving")
	}

	ms.Advance(200 * time.Millisecond) // quiet period elapses
	if ends != 1 || endTotalY != 6 {
		t.Errorf("ends = %d with total %v, want 1 with total 6", ends, endTotalY)
	}
	if wheel.Active() {
		t.Error("wheel still active after burst end")
	}
}

func TestWheelSeparateBursts(t *testing.T) {
	ms := sched.NewManual()
	wheel := NewWheel(DefaultWheelConfig(), ms)

	starts := 0
	ends := 0
	wheel.OnStart = func() { starts++ }
	wheel.OnEnd = func(_, _ float64) { ends++ }

	wheel.HandleWheel(tick(0, 1, 0))
	ms.Advance(500 * time.Millisecond)
	wheel.HandleWheel(tick(0, 1, 500))
	ms.Advance(500 * time.Millisecond)

	if starts != 2 || ends != 2 {
		t.Errorf("starts = %d, ends = %d; want 2 and 2", starts, ends)
	}
}

func TestWheelResetSuppressesEnd(t *testing.T) {
	ms := sched.NewManual()
	wheel := NewWheel(DefaultWheelConfig(), ms)

	ends := 0
	wheel.OnEnd = func(_, _ float64) { ends++ }

	wheel.HandleWheel(tick(0, 1, 0))
	wheel.Reset()
	ms.Advance(time.Second)

	if ends != 0 {
		t.Errorf("OnEnd ran %d times after Reset, want 0", ends)
	}
	if wheel.Active() {
		t.Error("wheel active after Reset")
	}
}
