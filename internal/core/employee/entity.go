package employee

// Department は所属部署を表します。
type Department string

const (
	DepartmentAnalytics Department = "analytics"
	DepartmentTech      Department = "tech"
)

// Position は職位を表します。
type Position string

const (
	PositionJunior Position = "junior"
	PositionMedior Position = "medior"
	PositionSenior Position = "senior"
)

// DateLayout は日付項目の書式です。
const DateLayout = "2006-01-02"

// Employee は社員レコードです。永続化時の JSON 表現もこの構造に従います。
type Employee struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"firstName" validate:"required"`
	LastName         string     `json:"lastName" validate:"required"`
	DateOfEmployment string     `json:"dateOfEmployment" validate:"required,employee_date"`
	DateOfBirth      string     `json:"dateOfBirth" validate:"required,employee_date"`
	PhoneNumber      string     `json:"phoneNumber" validate:"required,employee_phone"`
	Email            string     `json:"email" validate:"required,employee_email"`
	Department       Department `json:"department" validate:"required,oneof=analytics tech"`
	Position         Position   `json:"position" validate:"required,oneof=junior medior senior"`
}

// Patch は部分更新の内容です。nil のフィールドは変更しません。
type Patch struct {
	FirstName        *string     `json:"firstName,omitempty"`
	LastName         *string     `json:"lastName,omitempty"`
	DateOfEmployment *string     `json:"dateOfEmployment,omitempty"`
	DateOfBirth      *string     `json:"dateOfBirth,omitempty"`
	PhoneNumber      *string     `json:"phoneNumber,omitempty"`
	Email            *string     `json:"email,omitempty"`
	Department       *Department `json:"department,omitempty"`
	Position         *Position   `json:"position,omitempty"`
}

// Apply は e に p を浅くマージした値を返します。e 自体は変更しません。
func (p Patch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.DateOfEmployment != nil {
		e.DateOfEmployment = *p.DateOfEmployment
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	return e
}

// IsEmpty はどのフィールドも指定されていない場合に true を返します。
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

func cloneEmployees(src []Employee) []Employee {
	out := make([]Employee, len(src))
	copy(out, src)
	return out
}

func nextIDFor(employees []Employee) int64 {
	var maxID int64
	for _, e := range employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
