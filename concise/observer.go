package concise

// Observer receives notification of mutation events. It lets an optional
// collaborator such as a metrics counter watch a ConciseSet without this
// package depending on it for correctness — concise never requires an
// observer to be set, and never imports one.
type Observer interface {
	OnEvent(name string)
}

// SetObserver attaches o to s. Passing nil detaches any existing observer.
func (s *ConciseSet) SetObserver(o Observer) {
	s.observer = o
}

func (s *ConciseSet) notify(name string) {
	if s.observer != nil {
		s.observer.OnEvent(name)
	}
}
