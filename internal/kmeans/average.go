package kmeans

type AverageStore struct {
	sum   float64
	count int
}

func (s *AverageStore) Add(value float64) {
	s.sum += value
	s.count += 1
}

// Average returns 0 for an empty store.
func (s *AverageStore) Average() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func (s *AverageStore) Count() int { return s.count }
