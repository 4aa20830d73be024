package health

// 滑动窗口策略

type SlidingStrategy struct {
	StepUp   float64
	StepDown float64
}

func (s *SlidingStrategy) Update(current float64, success bool) float64 {
	if success {
		return minF(current+s.StepUp, 100)
	}
	return maxF(current-s.StepDown, 0)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
