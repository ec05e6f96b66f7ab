package employee

import (
	"reflect"
	"testing"
)

func seedCollection() []Employee {
	a := sampleEmployee("Ada")
	a.ID = 1
	b := sampleEmployee("Grace")
	b.ID = 3
	return []Employee{a, b}
}

func TestReduce_Add(t *testing.T) {
	t.Parallel()

	in := seedCollection()
	before := cloneEmployees(in)
	added := sampleEmployee("Linus")
	added.ID = 9

	out := Reduce(in, NewAddAction(added))
	if len(out) != 3 || out[2].ID != 9 {
		t.Fatalf("expected appended record, got %+v", out)
	}
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("input collection mutated")
	}
}

func TestReduce_Update(t *testing.T) {
	t.Parallel()

	in := seedCollection()
	before := cloneEmployees(in)

	out := Reduce(in, NewUpdateAction(1, Patch{LastName: strPtr("X")}))
	if out[0].LastName != "X" {
		t.Fatalf("expected lastName X, got %s", out[0].LastName)
	}
	if out[0].FirstName != "Ada" || out[0].Email != in[0].Email {
		t.Fatalf("unrelated fields changed: %+v", out[0])
	}
	if !reflect.DeepEqual(out[1], in[1]) {
		t.Fatalf("other record changed")
	}
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("input collection mutated")
	}
}

func TestReduce_NoOpLaws(t *testing.T) {
	t.Parallel()

	in := seedCollection()

	if out := Reduce(in, NewUpdateAction(42, Patch{FirstName: strPtr("Nobody")})); !reflect.DeepEqual(out, in) {
		t.Fatalf("update of missing id changed collection: %+v", out)
	}
	if out := Reduce(in, NewDeleteAction(42)); !reflect.DeepEqual(out, in) {
		t.Fatalf("delete of missing id changed collection: %+v", out)
	}
	if out := Reduce(in, nil); !reflect.DeepEqual(out, in) {
		t.Fatalf("nil action changed collection")
	}
	if out := Reduce(in, &DeleteAction{ID: 1}); !reflect.DeepEqual(out, in) {
		t.Fatalf("unknown action changed collection")
	}
}

func TestReduce_DeletePreservesOrder(t *testing.T) {
	t.Parallel()

	in := append(seedCollection(), Employee{ID: 5, FirstName: "Ken"})
	out := Reduce(in, NewDeleteAction(3))

	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 5 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestReduce_Deterministic(t *testing.T) {
	t.Parallel()

	in := seedCollection()
	action := NewUpdateAction(3, Patch{Email: strPtr("grace@example.com")})
	if !reflect.DeepEqual(Reduce(in, action), Reduce(in, action)) {
		t.Fatalf("reduce is not deterministic")
	}
}
