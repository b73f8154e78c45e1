// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/internal/platform/respond"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

func newPrinter(format string) (*respond.Printer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return respond.New(out, errOut, format), out, errOut
}

func TestOK_Table(t *testing.T) {
	printer, out, _ := newPrinter(respond.FormatTable)

	require.NoError(t, printer.OK(nil, respond.Table{
		Columns: []string{"ID", "NAME"},
		Rows:    [][]string{{"1", "Blog Post"}, {"22", "Page"}},
	}))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "NAME"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Blog", "Post"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"22", "Page"}, strings.Fields(lines[2]))

	column := strings.Index(lines[0], "NAME")
	assert.Equal(t, column, strings.Index(lines[1], "Blog Post"))
	assert.Equal(t, column, strings.Index(lines[2], "Page"))
}

func TestOK_EmptyTablePrintsNothing(t *testing.T) {
	printer, out, _ := newPrinter(respond.FormatTable)

	require.NoError(t, printer.OK(nil, respond.Table{}))
	assert.Empty(t, out.String())
}

func TestOK_JSON(t *testing.T) {
	printer, out, _ := newPrinter(respond.FormatJSON)

	require.NoError(t, printer.OK(map[string]int{"users": 2}, respond.Table{}))
	assert.JSONEq(t, `{"data":{"users":2}}`, out.String())
}

func TestPaginated_Footer(t *testing.T) {
	printer, out, _ := newPrinter(respond.FormatTable)

	require.NoError(t, printer.Paginated(nil, pagination.NewMeta(12, 5, 0), respond.Table{
		Rows: [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}},
	}))
	assert.Contains(t, out.String(), "1-5 of 12 (next: --limit 5 --offset 5)")
}

/*
TestError_Shapes verifies request failures carry their status and validation
failures their field details.
*/
func TestError_Shapes(t *testing.T) {
	printer, out, errOut := newPrinter(respond.FormatJSON)

	requestErr := apperr.FromResponse(http.MethodGet, "/api/x", http.StatusNotFound, []byte(`{"message":"not found"}`))
	printer.Error(fmt.Errorf("wrapped: %w", requestErr))
	assert.JSONEq(t, `{"error":"wrapped: not found","code":"REQUEST_HTTP","status":404}`, errOut.String())
	assert.Empty(t, out.String())

	table, _, tableErr := newPrinter(respond.FormatTable)
	table.Error(apperr.ValidationError("Validation failed", apperr.FieldError{Field: "name", Message: "This field is required"}))
	assert.Equal(t, "error: Validation failed\n  name: This field is required\n", tableErr.String())

	table.Error(errors.New("plain"))
	assert.Contains(t, tableErr.String(), "error: plain\n")
}
