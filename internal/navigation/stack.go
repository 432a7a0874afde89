package navigation

// Stack holds pages bottom to top.
type Stack struct {
	items []Page
}

func (s *Stack) Push(p Page) {
	if p == nil {
		return
	}
	s.items = append(s.items, p)
}

func (s *Stack) Pop() Page {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s Stack) Top() Page {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) ReplaceTop(p Page) {
	if p == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = p
}

func (s Stack) Len() int {
	return len(s.items)
}

// Routes returns the route names bottom to top.
func (s Stack) Routes() []string {
	out := make([]string, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.Route())
	}
	return out
}
