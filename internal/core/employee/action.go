package employee

// Kind は変更記述子の種別です。
type Kind string

const (
	KindAdd    Kind = "ADD_EMPLOYEE"
	KindUpdate Kind = "UPDATE_EMPLOYEE"
	KindDelete Kind = "DELETE_EMPLOYEE"

	// KindInvalid は計測用で、Action が返すことはありません。
	KindInvalid Kind = "INVALID"
)

// Action は Store に渡す変更記述子です。AddAction / UpdateAction / DeleteAction のいずれかです。
type Action interface {
	Kind() Kind
	isAction()
}

// AddAction はレコードの追加です。Employee.ID が 0 の場合は Store が採番します。
type AddAction struct {
	Employee Employee
}

// UpdateAction は ID で特定したレコードへの部分更新です。
type UpdateAction struct {
	ID    int64
	Patch Patch
}

// DeleteAction は ID で特定したレコードの削除です。
type DeleteAction struct {
	ID int64
}

func (AddAction) Kind() Kind    { return KindAdd }
func (UpdateAction) Kind() Kind { return KindUpdate }
func (DeleteAction) Kind() Kind { return KindDelete }

func (AddAction) isAction()    {}
func (UpdateAction) isAction() {}
func (DeleteAction) isAction() {}

// NewAddAction は追加アクションを生成します。
func NewAddAction(e Employee) AddAction {
	return AddAction{Employee: e}
}

// NewUpdateAction は更新アクションを生成します。
func NewUpdateAction(id int64, patch Patch) UpdateAction {
	return UpdateAction{ID: id, Patch: patch}
}

// NewDeleteAction は削除アクションを生成します。
func NewDeleteAction(id int64) DeleteAction {
	return DeleteAction{ID: id}
}

// isKnownAction は action が値型の 3 バリアントのいずれかであれば true を返します。
func isKnownAction(action Action) bool {
	switch action.(type) {
	case AddAction, UpdateAction, DeleteAction:
		return true
	default:
		return false
	}
}
