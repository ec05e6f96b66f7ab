package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/spf13/cobra"
)

// employeeFlags はフラグ名と JSON フィールド名の対応を持ちます。
type employeeFlags struct {
	values map[string]*string
}

var employeeFlagNames = []struct {
	flag  string
	field string
}{
	{"first-name", "firstName"},
	{"last-name", "lastName"},
	{"date-of-employment", "dateOfEmployment"},
	{"date-of-birth", "dateOfBirth"},
	{"phone", "phoneNumber"},
	{"email", "email"},
	{"department", "department"},
	{"position", "position"},
}

func bindEmployeeFlags(cmd *cobra.Command) *employeeFlags {
	f := &employeeFlags{values: make(map[string]*string)}
	for _, n := range employeeFlagNames {
		f.values[n.field] = cmd.Flags().String(n.flag, "", n.field)
	}
	return f
}

// changed は明示的に指定されたフラグだけを JSON 名で返します。
func (f *employeeFlags) changed(cmd *cobra.Command) map[string]string {
	out := make(map[string]string)
	for _, n := range employeeFlagNames {
		if cmd.Flags().Changed(n.flag) {
			out[n.field] = *f.values[n.field]
		}
	}
	return out
}

func decodeFields(fields map[string]string, dst any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", employee.ErrInvalidID, raw)
	}
	return id, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		query    string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "社員を一覧表示します",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			result, err := s.svc.ListEmployees(cmd.Context(), employee.ListEmployeesInput{Query: query, Page: page, PageSize: pageSize})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result.TotalCount == 0 {
				fmt.Fprintln(out, s.translator.T("employeeList.empty"))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.translator.T("employeeForm.firstName"),
				s.translator.T("employeeForm.lastName"),
				s.translator.T("employeeForm.email"),
				s.translator.T("employeeForm.phoneNumber"),
				s.translator.T("employeeForm.department"),
				s.translator.T("employeeForm.position"),
			)
			for _, e := range result.Employees {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
					s.translator.T("departments."+string(e.Department)),
					s.translator.T("positions."+string(e.Position)),
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d/%d (%d)\n", result.Page, result.TotalPages, result.TotalCount)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search by name, email or phone")
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", employee.DefaultPageSize, "rows per page")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "社員を JSON で表示します",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			found, err := s.svc.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(found)
		}),
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "社員を追加します",
		Args:  cobra.NoArgs,
	}
	flags := bindEmployeeFlags(cmd)
	cmd.RunE = withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
		var in employee.Employee
		if err := decodeFields(flags.changed(cmd), &in); err != nil {
			return err
		}
		created, err := s.svc.CreateEmployee(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (id=%d)\n", s.translator.T("messages.employeeCreated"), created.ID)
		return nil
	})
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "指定したフィールドだけを更新します",
		Args:  cobra.ExactArgs(1),
	}
	flags := bindEmployeeFlags(cmd)
	cmd.RunE = withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var patch employee.Patch
		if err := decodeFields(flags.changed(cmd), &patch); err != nil {
			return err
		}
		if _, err := s.svc.UpdateEmployee(cmd.Context(), id, patch); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.translator.T("messages.employeeUpdated"))
		return nil
	})
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "社員を削除します",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.svc.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.translator.T("messages.employeeDeleted"))
			return nil
		}),
	}
}
