package dice

// Scripted is a deterministic Source that replays fixed values. It exists for
// tests that need to steer encounter, reward and combat rolls.
type Scripted struct {
	Ints   []int
	Floats []float64
	// FloatFallback is returned once Floats is exhausted.
	FloatFallback float64
}

// Intn returns the next scripted int reduced into [0, n), or 0 when exhausted.
func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float, or FloatFallback when exhausted.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.FloatFallback
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

var _ Source = (*Scripted)(nil)
