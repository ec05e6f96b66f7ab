package employee

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorKind は検証エラーの種類です。UI 層が翻訳キーとして解決します。
type ErrorKind string

const (
	KindRequired          ErrorKind = "required"
	KindInvalidEmail      ErrorKind = "invalidEmail"
	KindInvalidPhone      ErrorKind = "invalidPhone"
	KindInvalidDate       ErrorKind = "invalidDate"
	KindInvalidDepartment ErrorKind = "invalidDepartment"
	KindInvalidPosition   ErrorKind = "invalidPosition"
)

// TranslationKey は翻訳カタログ上のキーを返します。
func (k ErrorKind) TranslationKey() string {
	return "validation." + string(k)
}

// FieldErrors はフィールド名 (JSON 名) からエラー種別への対応です。
type FieldErrors map[string]ErrorKind

// ValidationError は検証失敗を表すエラーです。
type ValidationError struct {
	Fields FieldErrors
}

// Sorted はフィールド名を辞書順で返します。
func (f FieldErrors) Sorted() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *ValidationError) Error() string {
	names := e.Fields.Sorted()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RequiredFields は作成フォームで必須となるフィールドです。
var RequiredFields = []string{
	"firstName", "lastName", "dateOfEmployment", "dateOfBirth",
	"phoneNumber", "email", "department", "position",
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+[0-9\s]{10,20}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister("employee_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	mustRegister("employee_phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	mustRegister("employee_date", func(fl validator.FieldLevel) bool {
		return isValidDate(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("employee: register validation %s: %v", tag, err))
	}
}

// IsValidEmail は空文字列か、基本的な local@domain.tld 形式なら true を返します。
func IsValidEmail(value string) bool {
	if value == "" {
		return true
	}
	return emailPattern.MatchString(value)
}

// IsValidPhone は空文字列か、+ で始まる国際形式なら true を返します。
func IsValidPhone(value string) bool {
	if value == "" {
		return true
	}
	return phonePattern.MatchString(value)
}

func isValidDate(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ValidateRequired は指定フィールドのうち値が空のものを required として返します。
// 未知のフィールド名は値が無いものとして扱います。
func ValidateRequired(e Employee, fields ...string) FieldErrors {
	errs := FieldErrors{}
	for _, field := range fields {
		value, ok := fieldValue(e, field)
		if !ok || validate.Var(value, "required") != nil {
			errs[field] = KindRequired
		}
	}
	return errs
}

// ValidateEmployee はレコード全体を検証します。問題が無ければ空の FieldErrors を返します。
func ValidateEmployee(e Employee) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(e)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = kindForTag(fe.Tag(), fe.Field())
	}
	return errs
}

func kindForTag(tag, field string) ErrorKind {
	switch tag {
	case "required":
		return KindRequired
	case "employee_email":
		return KindInvalidEmail
	case "employee_phone":
		return KindInvalidPhone
	case "employee_date":
		return KindInvalidDate
	}
	if field == "department" {
		return KindInvalidDepartment
	}
	return KindInvalidPosition
}

func fieldValue(e Employee, field string) (any, bool) {
	switch field {
	case "id":
		return e.ID, true
	case "firstName":
		return e.FirstName, true
	case "lastName":
		return e.LastName, true
	case "dateOfEmployment":
		return e.DateOfEmployment, true
	case "dateOfBirth":
		return e.DateOfBirth, true
	case "phoneNumber":
		return e.PhoneNumber, true
	case "email":
		return e.Email, true
	case "department":
		return string(e.Department), true
	case "position":
		return string(e.Position), true
	default:
		return nil, false
	}
}
