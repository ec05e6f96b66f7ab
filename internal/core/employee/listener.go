package employee

// Listener は状態変更の通知先です。エラーを返しても他の通知先やディスパッチには影響しません。
// Subscribe で登録する実装は比較可能な型 (ポインタなど) である必要があり、比較できない型は登録されません。
type Listener interface {
	OnStateChange(state State) error
}

// ListenerFunc は関数を Listener として扱うためのアダプタです。
type ListenerFunc func(state State) error

type funcListener struct {
	fn ListenerFunc
}

func (l *funcListener) OnStateChange(state State) error {
	return l.fn(state)
}

// subscribers は登録順を保つ Listener の集合です。
type subscribers struct {
	order []Listener
	set   map[Listener]struct{}
}

func newSubscribers() *subscribers {
	return &subscribers{set: make(map[Listener]struct{})}
}

func (s *subscribers) add(l Listener) {
	if _, ok := s.set[l]; ok {
		return
	}
	s.set[l] = struct{}{}
	s.order = append(s.order, l)
}

func (s *subscribers) remove(l Listener) {
	if _, ok := s.set[l]; !ok {
		return
	}
	delete(s.set, l)
	for i, existing := range s.order {
		if existing == l {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *subscribers) snapshot() []Listener {
	out := make([]Listener, len(s.order))
	copy(out, s.order)
	return out
}

func (s *subscribers) has(l Listener) bool {
	_, ok := s.set[l]
	return ok
}

func (s *subscribers) len() int {
	return len(s.order)
}
