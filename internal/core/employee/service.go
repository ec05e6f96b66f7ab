package employee

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// 一覧取得の既定ページサイズと上限です。
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// UseCase は社員名簿ユースケースの公開インターフェースです。
type UseCase interface {
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	CreateEmployee(ctx context.Context, in Employee) (*Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch Patch) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
	Watch(fn ListenerFunc) (State, func())
}

// ListEmployeesInput は一覧取得時の入力です。Page は 1 始まりです。
type ListEmployeesInput struct {
	Query    string
	Page     int
	PageSize int
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees  []Employee
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
}

// Service は Store を介して社員名簿を操作します。
// Store は並行利用に対応しないため、Service が排他制御を行います。
type Service struct {
	mu    sync.Mutex
	store *Store
}

// NewService は Service を生成します。
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ListEmployees は検索語で絞り込んだ社員をページ単位で返します。
func (s *Service) ListEmployees(_ context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	pageSize, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	page := in.Page
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	state := s.store.State()
	s.mu.Unlock()

	filtered := filterEmployees(state.Employees, in.Query)
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := total
	if page <= totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &ListEmployeesResult{
		Employees:  filtered[start:end:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

// GetEmployee は ID で社員を取得します。
func (s *Service) GetEmployee(_ context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := findEmployee(s.store.State().Employees, id)
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return &found, nil
}

// CreateEmployee は社員を検証して追加します。ID は Store が採番します。
func (s *Service) CreateEmployee(ctx context.Context, in Employee) (*Employee, error) {
	in.ID = 0
	in = trimEmployee(in)
	if errs := ValidateEmployee(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied, ok := s.store.Dispatch(ctx, NewAddAction(in))
	if !ok {
		return nil, ErrInvalidAction
	}
	created := applied.(AddAction).Employee
	return &created, nil
}

// UpdateEmployee は社員に patch をマージし、結果を検証してから反映します。
func (s *Service) UpdateEmployee(ctx context.Context, id int64, patch Patch) (*Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := findEmployee(s.store.State().Employees, id)
	if !ok {
		return nil, ErrEmployeeNotFound
	}

	merged := trimEmployee(patch.Apply(existing))
	if errs := ValidateEmployee(merged); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, ok := s.store.Dispatch(ctx, NewUpdateAction(id, patchFrom(merged))); !ok {
		return nil, ErrInvalidAction
	}
	return &merged, nil
}

// DeleteEmployee は社員を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := findEmployee(s.store.State().Employees, id); !ok {
		return ErrEmployeeNotFound
	}
	if _, ok := s.store.Dispatch(ctx, NewDeleteAction(id)); !ok {
		return ErrInvalidAction
	}
	return nil
}

// Watch は現在の状態を返しつつ fn を購読者として登録します。
// fn は Store の排他区間内で呼ばれるため、Service のメソッドを呼び出してはいけません。
func (s *Service) Watch(fn ListenerFunc) (State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unsubscribe := s.store.SubscribeFunc(fn)
	return s.store.State(), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		unsubscribe()
	}
}

func filterEmployees(employees []Employee, query string) []Employee {
	q := strings.TrimSpace(query)
	if q == "" {
		return employees
	}
	lower := strings.ToLower(q)

	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FirstName), lower) ||
			strings.Contains(strings.ToLower(e.LastName), lower) ||
			strings.Contains(strings.ToLower(e.Email), lower) ||
			strings.Contains(e.PhoneNumber, q) {
			out = append(out, e)
		}
	}
	return out
}

func findEmployee(employees []Employee, id int64) (Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func trimEmployee(e Employee) Employee {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.DateOfEmployment = strings.TrimSpace(e.DateOfEmployment)
	e.DateOfBirth = strings.TrimSpace(e.DateOfBirth)
	e.PhoneNumber = strings.TrimSpace(e.PhoneNumber)
	e.Email = strings.TrimSpace(e.Email)
	return e
}

func patchFrom(e Employee) Patch {
	return Patch{
		FirstName:        &e.FirstName,
		LastName:         &e.LastName,
		DateOfEmployment: &e.DateOfEmployment,
		DateOfBirth:      &e.DateOfBirth,
		PhoneNumber:      &e.PhoneNumber,
		Email:            &e.Email,
		Department:       &e.Department,
		Position:         &e.Position,
	}
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return DefaultPageSize, nil
	}
	if pageSize > MaxPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}
