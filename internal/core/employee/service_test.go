package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

func newTestService() (*Service, *fakeKV) {
	kv := newFakeKV()
	return NewService(newTestStore(kv)), kv
}

func TestService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	svc, kv := newTestService()
	in := sampleEmployee("  Ada  ")
	in.ID = 77

	created, err := svc.CreateEmployee(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected store-assigned id 1, got %d", created.ID)
	}
	if created.FirstName != "Ada" {
		t.Fatalf("expected trimmed first name, got %q", created.FirstName)
	}
	if kv.sets != 1 {
		t.Fatalf("expected persisted write")
	}
}

func TestService_CreateEmployee_Invalid(t *testing.T) {
	t.Parallel()

	svc, kv := newTestService()
	in := sampleEmployee("Ada")
	in.Email = "broken"

	_, err := svc.CreateEmployee(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["email"] != KindInvalidEmail {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if kv.sets != 0 {
		t.Fatalf("invalid record must not be dispatched")
	}
}

func TestService_UpdateEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	created, err := svc.CreateEmployee(ctx, sampleEmployee("Ada"))
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	pos := PositionMedior
	updated, err := svc.UpdateEmployee(ctx, created.ID, Patch{LastName: strPtr("Byron"), Position: &pos})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.LastName != "Byron" || updated.Position != PositionMedior || updated.FirstName != "Ada" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	got, err := svc.GetEmployee(ctx, created.ID)
	if err != nil || got.LastName != "Byron" {
		t.Fatalf("update not visible: %+v, %v", got, err)
	}

	if _, err := svc.UpdateEmployee(ctx, created.ID, Patch{PhoneNumber: strPtr("123")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.UpdateEmployee(ctx, 99, Patch{}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.UpdateEmployee(ctx, 0, Patch{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}

func TestService_DeleteEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	created, _ := svc.CreateEmployee(ctx, sampleEmployee("Ada"))

	if err := svc.DeleteEmployee(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	if err := svc.DeleteEmployee(ctx, created.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := svc.GetEmployee(ctx, created.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_ListEmployees_SearchAndPagination(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		e := sampleEmployee(fmt.Sprintf("User%02d", i))
		e.Email = fmt.Sprintf("user%02d@example.com", i)
		if _, err := svc.CreateEmployee(ctx, e); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}
	grace := sampleEmployee("Grace")
	grace.LastName = "Hopper"
	grace.Email = "GRACE@navy.mil"
	grace.PhoneNumber = "+1 555 010 9999"
	if _, err := svc.CreateEmployee(ctx, grace); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	page1, err := svc.ListEmployees(ctx, ListEmployeesInput{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(page1.Employees) != 10 || page1.TotalCount != 13 || page1.TotalPages != 2 || page1.Page != 1 {
		t.Fatalf("unexpected first page: %+v", page1)
	}

	page2, _ := svc.ListEmployees(ctx, ListEmployeesInput{Page: 2})
	if len(page2.Employees) != 3 || page2.Employees[2].FirstName != "Grace" {
		t.Fatalf("unexpected second page: %+v", page2)
	}

	page3, _ := svc.ListEmployees(ctx, ListEmployeesInput{Page: 3})
	if len(page3.Employees) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(page3.Employees))
	}

	for _, p := range []int{math.MaxInt / 2, math.MaxInt, int(float64(1e17))} {
		far, err := svc.ListEmployees(ctx, ListEmployeesInput{Page: p, PageSize: MaxPageSize})
		if err != nil {
			t.Fatalf("ListEmployees(page=%d) returned error: %v", p, err)
		}
		if len(far.Employees) != 0 || far.Page != p || far.TotalCount != 13 {
			t.Fatalf("expected empty page for page=%d, got %+v", p, far)
		}
	}

	for _, q := range []string{"hopper", "grace@NAVY", "555 010"} {
		res, _ := svc.ListEmployees(ctx, ListEmployeesInput{Query: q})
		if res.TotalCount != 1 || res.Employees[0].FirstName != "Grace" {
			t.Fatalf("query %q: unexpected result %+v", q, res)
		}
	}

	if _, err := svc.ListEmployees(ctx, ListEmployeesInput{PageSize: 1000}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
}

func TestService_Watch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	_, _ = svc.CreateEmployee(ctx, sampleEmployee("Ada"))

	var seen []int
	initial, cancel := svc.Watch(func(state State) error {
		seen = append(seen, len(state.Employees))
		return nil
	})
	if len(initial.Employees) != 1 {
		t.Fatalf("expected initial snapshot with 1 employee, got %d", len(initial.Employees))
	}

	_, _ = svc.CreateEmployee(ctx, sampleEmployee("Grace"))
	cancel()
	_, _ = svc.CreateEmployee(ctx, sampleEmployee("Linus"))

	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
