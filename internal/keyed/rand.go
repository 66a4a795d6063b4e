package keyed

// splitmix is SplitMix64 (Steele, Lea, Flood 2014). Its output is fixed by
// the seed alone, on every platform and in every language, so a watermark
// embedded by one build can be read by another.
type splitmix struct {
	state uint64
}

func newRand(seed int64) *splitmix {
	return &splitmix{state: uint64(seed)}
}

func (s *splitmix) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a value in [0, n). n must be positive.
func (s *splitmix) Intn(n int) int {
	return int(s.Uint64() % uint64(n))
}

// Shuffle is a Fisher-Yates shuffle from the last index down.
func (s *splitmix) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.Intn(i+1))
	}
}
