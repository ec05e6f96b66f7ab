package employee

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

// State は Store の状態のスナップショットです。
type State struct {
	Employees []Employee `json:"employees"`
}

// Recorder はディスパッチの結果を計測するためのフックです。
type Recorder interface {
	ObserveDispatch(kind Kind, ok bool)
	ObservePersistFailure()
	ObserveListenerFailure()
	SetCollectionSize(n int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveDispatch(Kind, bool) {}
func (noopRecorder) ObservePersistFailure()     {}
func (noopRecorder) ObserveListenerFailure()    {}
func (noopRecorder) SetCollectionSize(int)      {}

// Option は Store の生成オプションです。
type Option func(*Store)

// WithLogger はロガーを設定します。
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder は計測フックを設定します。
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		if r != nil {
			s.recorder = r
		}
	}
}

// Store は社員コレクションの唯一の所有者です。採番、永続化、変更通知を担います。
//
// Store は単一ゴルーチンからの利用を前提としており、並行利用に対して安全ではありません。
// Listener の中から Dispatch を呼ぶと入れ子で実行されます。
type Store struct {
	employees []Employee
	nextID    int64
	persister Persister
	listeners *subscribers
	logger    *slog.Logger
	recorder  Recorder
}

// NewStore は永続化済みのコレクションを読み込んで Store を生成します。
// 読み込みに失敗した場合はログを出力して空のコレクションから開始します。
func NewStore(ctx context.Context, persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		listeners: newSubscribers(),
		logger:    slog.Default(),
		recorder:  noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.employees = s.load(ctx)
	s.nextID = nextIDFor(s.employees)
	s.recorder.SetCollectionSize(len(s.employees))
	return s
}

func (s *Store) load(ctx context.Context) []Employee {
	if s.persister == nil {
		return []Employee{}
	}
	employees, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load employees from storage", slog.Any("error", err))
		return []Employee{}
	}
	if employees == nil {
		return []Employee{}
	}
	return employees
}

// State は現在のコレクションの独立したコピーを返します。
func (s *Store) State() State {
	return State{Employees: cloneEmployees(s.employees)}
}

// NextID は次に採番される ID を返します。
func (s *Store) NextID() int64 {
	return s.nextID
}

// Dispatch はアクションを適用し、永続化して購読者へ通知します。
// 適用されたアクション (追加時は採番済み) を返します。無効なアクションはログに記録し false を返します。
func (s *Store) Dispatch(ctx context.Context, action Action) (Action, bool) {
	if action == nil || !isKnownAction(action) {
		s.logger.Error("invalid action dispatched", slog.String("action", fmt.Sprintf("%#v", action)))
		s.recorder.ObserveDispatch(KindInvalid, false)
		return nil, false
	}

	if add, ok := action.(AddAction); ok && add.Employee.ID == 0 {
		add.Employee.ID = s.nextID
		s.nextID++
		action = add
	}

	s.employees = Reduce(s.employees, action)

	if s.persister != nil {
		if err := s.persister.Save(ctx, s.employees); err != nil {
			s.logger.Error("failed to save employees to storage",
				slog.String("kind", string(action.Kind())),
				slog.Any("error", err),
			)
			s.recorder.ObservePersistFailure()
		}
	}

	s.nextID = nextIDFor(s.employees)
	s.recorder.ObserveDispatch(action.Kind(), true)
	s.recorder.SetCollectionSize(len(s.employees))

	s.notify()
	return action, true
}

// Subscribe は l を購読者として登録し、登録解除関数を返します。同じ l の重複登録は 1 件にまとめられます。
// 通知中に解除された購読者には、その回の残りの通知は届きません。通知中に追加された購読者は次回から通知されます。
// nil や比較できない l はログを出力して無視し、何もしない解除関数を返します。
func (s *Store) Subscribe(l Listener) func() {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		s.logger.Error("listener rejected", slog.String("type", fmt.Sprintf("%T", l)))
		return func() {}
	}
	s.listeners.add(l)
	return func() {
		s.listeners.remove(l)
	}
}

// SubscribeFunc は関数を購読者として登録します。呼び出しごとに別の購読になります。
func (s *Store) SubscribeFunc(fn ListenerFunc) func() {
	return s.Subscribe(&funcListener{fn: fn})
}

func (s *Store) notify() {
	for _, l := range s.listeners.snapshot() {
		if !s.listeners.has(l) {
			continue
		}
		s.notifyOne(l)
	}
}

func (s *Store) notifyOne(l Listener) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("listener panicked", slog.Any("panic", r))
			s.recorder.ObserveListenerFailure()
		}
	}()
	if err := l.OnStateChange(s.State()); err != nil {
		s.logger.Error("listener failed", slog.Any("error", err))
		s.recorder.ObserveListenerFailure()
	}
}
