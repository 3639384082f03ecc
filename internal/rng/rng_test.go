package rng

import "testing"

func TestIntn_Bounds(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10_000; i++ {
		v := Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, out of [0, 7)", v)
		}
	}
}

func TestIntn_ConcurrentUseIsRace_Free(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				Intn(100)
			}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}
}
