package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/ogurasousui/codex-employee-directory/internal/adapters/grpc/directoryv1"
	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/ogurasousui/codex-employee-directory/internal/core/i18n"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// EmployeeDirectoryHandler は EmployeeDirectory サービスの gRPC 実装です。
type EmployeeDirectoryHandler struct {
	svc        employee.UseCase
	translator *i18n.Translator
	logger     *slog.Logger
	directoryv1.UnimplementedEmployeeDirectoryServer
}

// NewEmployeeDirectoryHandler は EmployeeDirectoryHandler を生成します。
// translator が nil の場合、検証エラーの説明には翻訳キーをそのまま返します。
func NewEmployeeDirectoryHandler(svc employee.UseCase, translator *i18n.Translator, logger *slog.Logger) *EmployeeDirectoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeDirectoryHandler{svc: svc, translator: translator, logger: logger}
}

// ListEmployees は検索とページングを行った社員一覧を返します。
func (h *EmployeeDirectoryHandler) ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		Query:    fields["query"].GetStringValue(),
		Page:     intField(fields["page"]),
		PageSize: intField(fields["pageSize"]),
	})
	if err != nil {
		return nil, h.toStatusError(ctx, err)
	}

	return toStruct(map[string]any{
		"employees":  result.Employees,
		"page":       result.Page,
		"pageSize":   result.PageSize,
		"totalPages": result.TotalPages,
		"totalCount": result.TotalCount,
	})
}

// GetEmployee は社員を取得します。
func (h *EmployeeDirectoryHandler) GetEmployee(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	found, err := h.svc.GetEmployee(ctx, req.GetValue())
	if err != nil {
		return nil, h.toStatusError(ctx, err)
	}
	return toStruct(found)
}

// CreateEmployee は社員を作成します。
func (h *EmployeeDirectoryHandler) CreateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var in employee.Employee
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("employee: %v", err))
	}

	created, err := h.svc.CreateEmployee(ctx, in)
	if err != nil {
		return nil, h.toStatusError(ctx, err)
	}
	return toStruct(created)
}

// UpdateEmployee は社員情報を部分更新します。
func (h *EmployeeDirectoryHandler) UpdateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id := int64(req.GetFields()["id"].GetNumberValue())
	var patch employee.Patch
	if p := req.GetFields()["patch"].GetStructValue(); p != nil {
		if err := fromStruct(p, &patch); err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("patch: %v", err))
		}
	}

	updated, err := h.svc.UpdateEmployee(ctx, id, patch)
	if err != nil {
		return nil, h.toStatusError(ctx, err)
	}
	return toStruct(updated)
}

// DeleteEmployee は社員を削除します。
func (h *EmployeeDirectoryHandler) DeleteEmployee(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if err := h.svc.DeleteEmployee(ctx, req.GetValue()); err != nil {
		return nil, h.toStatusError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// WatchEmployees は現在の状態を送信した後、変更のたびに最新の状態を送信します。
// 送信が追いつかない場合、途中の状態は読み飛ばされます。
func (h *EmployeeDirectoryHandler) WatchEmployees(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	updates := make(chan employee.State, 1)
	initial, cancel := h.svc.Watch(func(state employee.State) error {
		for {
			select {
			case updates <- state:
				return nil
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer cancel()

	if err := h.sendState(stream, initial); err != nil {
		return err
	}

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case state := <-updates:
			if err := h.sendState(stream, state); err != nil {
				return err
			}
		}
	}
}

func (h *EmployeeDirectoryHandler) sendState(stream grpc.ServerStreamingServer[structpb.Struct], state employee.State) error {
	msg, err := toStruct(state)
	if err != nil {
		return err
	}
	if err := stream.Send(msg); err != nil {
		h.logger.Warn("watch stream send failed", slog.Any("error", err))
		return err
	}
	return nil
}

func (h *EmployeeDirectoryHandler) languageFrom(ctx context.Context) i18n.Language {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return i18n.English
	}
	values := md.Get("accept-language")
	if len(values) == 0 {
		return i18n.English
	}
	return i18n.Negotiate(values[0])
}

// intField は数値フィールドを int に変換します。範囲外や NaN は int32 の範囲に収めます。
func intField(v *structpb.Value) int {
	n := v.GetNumberValue()
	switch {
	case math.IsNaN(n):
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int(n)
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return s, nil
}

func fromStruct(s *structpb.Struct, dst any) error {
	b, err := json.Marshal(s.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
