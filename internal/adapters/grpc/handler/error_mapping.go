package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (h *EmployeeDirectoryHandler) toStatusError(ctx context.Context, err error) error {
	var verr *employee.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		return h.validationStatus(ctx, verr)
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidAction):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (h *EmployeeDirectoryHandler) validationStatus(ctx context.Context, verr *employee.ValidationError) error {
	lang := h.languageFrom(ctx)

	br := &errdetails.BadRequest{}
	for _, field := range verr.Fields.Sorted() {
		key := verr.Fields[field].TranslationKey()
		desc := key
		if h.translator != nil {
			desc = h.translator.Lookup(lang, key)
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: desc,
		})
	}

	st := status.New(codes.InvalidArgument, verr.Error())
	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
