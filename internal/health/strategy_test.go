package health

import "testing"

func TestSlidingStrategy(t *testing.T) {
	s := &SlidingStrategy{StepUp: 2, StepDown: 10}
	if got := s.Update(100, true); got != 100 {
		t.Errorf("should cap at 100, got %v", got)
	}
	if got := s.Update(100, false); got != 90 {
		t.Errorf("failure should step down, got %v", got)
	}
	if got := s.Update(5, false); got != 0 {
		t.Errorf("should floor at 0, got %v", got)
	}
}

func TestEWMAStrategy(t *testing.T) {
	e := &EWMAStrategy{Alpha: 0.1}
	got := e.Update(100, false)
	if got >= 100 || got <= 0 {
		t.Errorf("unexpected ewma: %v", got)
	}
	if up := e.Update(got, true); up <= got {
		t.Errorf("success should pull rate up: %v -> %v", got, up)
	}
}

func TestDecayStrategy(t *testing.T) {
	d := &DecayStrategy{Factor: 0.95}
	if got := d.Update(80, true); got != 80 {
		t.Errorf("success should not decay, got %v", got)
	}
	if got := d.Update(80, false); got != 76 {
		t.Errorf("failure should decay by factor, got %v", got)
	}
}
