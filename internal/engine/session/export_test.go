package session

// BuildCount exposes the number of session constructions for tests.
func (s *Service) BuildCount() int {
	return int(s.builds.Load())
}
