package employee

import "testing"

func TestActionConstructors(t *testing.T) {
	t.Parallel()

	add := NewAddAction(Employee{FirstName: "Ada"})
	if add.Kind() != KindAdd || add.Employee.FirstName != "Ada" {
		t.Fatalf("unexpected add action: %+v", add)
	}

	upd := NewUpdateAction(3, Patch{LastName: strPtr("X")})
	if upd.Kind() != KindUpdate || upd.ID != 3 || *upd.Patch.LastName != "X" {
		t.Fatalf("unexpected update action: %+v", upd)
	}

	del := NewDeleteAction(7)
	if del.Kind() != KindDelete || del.ID != 7 {
		t.Fatalf("unexpected delete action: %+v", del)
	}
}

func TestIsKnownAction(t *testing.T) {
	t.Parallel()

	if !isKnownAction(NewDeleteAction(1)) {
		t.Fatalf("value actions must be known")
	}
	if isKnownAction(&AddAction{}) {
		t.Fatalf("pointer variants must be rejected")
	}
	if isKnownAction(nil) {
		t.Fatalf("nil must be rejected")
	}
}
