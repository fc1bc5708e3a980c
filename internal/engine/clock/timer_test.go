package clock

import (
	"testing"
	"time"
)

func TestRepeatingTimer(t *testing.T) {
	tests := []struct {
		name    string
		ticks   []time.Duration
		want    []int
		elapsed time.Duration
	}{
		{
			name:    "accumulates to one period",
			ticks:   []time.Duration{400 * time.Millisecond, 400 * time.Millisecond, 400 * time.Millisecond},
			want:    []int{0, 0, 1},
			elapsed: 200 * time.Millisecond,
		},
		{
			name:    "exact period",
			ticks:   []time.Duration{time.Second},
			want:    []int{1},
			elapsed: 0,
		},
		{
			name:    "long frame finishes several times",
			ticks:   []time.Duration{3500 * time.Millisecond},
			want:    []int{3},
			elapsed: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewRepeating(time.Second)
			for i, dt := range tt.ticks {
				if got := timer.Tick(dt); got != tt.want[i] {
					t.Errorf("tick %d: finished %d times, want %d", i, got, tt.want[i])
				}
				if timer.JustFinished() != (tt.want[i] > 0) {
					t.Errorf("tick %d: JustFinished mismatch", i)
				}
			}
			if timer.Elapsed() != tt.elapsed {
				t.Errorf("expected %v left over, got %v", tt.elapsed, timer.Elapsed())
			}
		})
	}
}

func TestOnceTimer(t *testing.T) {
	timer := NewOnce(time.Second)
	if timer.Tick(1500*time.Millisecond) != 1 {
		t.Fatal("expected first completion")
	}
	if timer.Tick(5*time.Second) != 0 {
		t.Error("one-shot timer finished twice")
	}
	timer.Reset()
	if timer.Tick(time.Second) != 1 {
		t.Error("expected completion after reset")
	}
}

func TestZeroPeriodNeverFinishes(t *testing.T) {
	timer := NewRepeating(0)
	if timer.Tick(time.Hour) != 0 {
		t.Error("zero period timer should never finish")
	}
}
