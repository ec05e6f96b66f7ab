package employee

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeKV struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

var errStorage = errors.New("storage unavailable")

func sampleEmployee(first string) Employee {
	return Employee{
		FirstName:        first,
		LastName:         "Lovelace",
		DateOfEmployment: "2024-01-15",
		DateOfBirth:      "1990-12-10",
		PhoneNumber:      "+90 532 123 45 67",
		Email:            "ada@example.com",
		Department:       DepartmentTech,
		Position:         PositionSenior,
	}
}

func newTestStore(kv *fakeKV) *Store {
	return NewStore(context.Background(), NewKVPersister(kv, ""), WithLogger(discardLogger()))
}

func strPtr(s string) *string {
	return &s
}
