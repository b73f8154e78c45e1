// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond renders command results for the operator.
//
// # Architecture
//
// Every command prints through a [Printer] so output follows one of two
// predictable shapes: aligned text tables for people, or the JSON envelopes
// below for scripts. Errors always go to the error stream.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/taibuivan/cmsadmin/internal/platform/apperr"
	"github.com/taibuivan/cmsadmin/pkg/pagination"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// SuccessEnvelope is the JSON envelope for single results.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PaginatedEnvelope is the JSON envelope for paginated lists.
type PaginatedEnvelope struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// MessageEnvelope is the JSON envelope for acknowledgements.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the JSON envelope for failures.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Status  int                 `json:"status,omitempty"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// Table is a text rendering of a result.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Printer writes results in the configured format.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format string
}

// New creates a [Printer]. Any format other than JSON renders tables.
func New(out, errOut io.Writer, format string) *Printer {
	return &Printer{out: out, errOut: errOut, format: format}
}

// JSONMode reports whether results are rendered as JSON.
func (printer *Printer) JSONMode() bool {
	return printer.format == FormatJSON
}

// OK writes a single result.
func (printer *Printer) OK(data any, table Table) error {
	if printer.JSONMode() {
		return printer.encode(printer.out, SuccessEnvelope{Data: data})
	}
	return printer.table(table)
}

// Paginated writes one page of a list followed by its position.
func (printer *Printer) Paginated(data any, meta pagination.Meta, table Table) error {
	if printer.JSONMode() {
		return printer.encode(printer.out, PaginatedEnvelope{Data: data, Meta: meta})
	}
	if err := printer.table(table); err != nil {
		return err
	}

	shown := len(table.Rows)
	first := meta.Offset + 1
	if shown == 0 {
		first = meta.Offset
	}
	footer := fmt.Sprintf("\n%d-%d of %d", first, meta.Offset+shown, meta.Total)
	if meta.HasMore() {
		next := meta.Next()
		footer += fmt.Sprintf(" (next: --limit %d --offset %d)", next.Limit, next.Offset)
	}
	_, err := fmt.Fprintln(printer.out, footer)
	return err
}

// Message writes an acknowledgement.
func (printer *Printer) Message(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	if printer.JSONMode() {
		return printer.encode(printer.out, MessageEnvelope{Message: message})
	}
	_, err := fmt.Fprintln(printer.out, message)
	return err
}

// Error writes err to the error stream exactly once.
func (printer *Printer) Error(err error) {
	envelope := ErrorEnvelope{Error: err.Error(), Code: "ERROR"}

	var appError *apperr.AppError
	var requestError *apperr.RequestError
	switch {
	case errors.As(err, &appError):
		envelope.Code = appError.Code
		envelope.Details = appError.Details
	case errors.As(err, &requestError):
		envelope.Code = "REQUEST_" + strings.ToUpper(string(requestError.Kind))
		envelope.Status = requestError.Status
	}

	if printer.JSONMode() {
		_ = printer.encode(printer.errOut, envelope)
		return
	}

	fmt.Fprintf(printer.errOut, "error: %s\n", envelope.Error)
	for _, detail := range envelope.Details {
		fmt.Fprintf(printer.errOut, "  %s: %s\n", detail.Field, detail.Message)
	}
}

// Notice writes a hint for the operator to the error stream, keeping the
// result stream clean for scripts.
func (printer *Printer) Notice(format string, args ...any) {
	fmt.Fprintf(printer.errOut, format+"\n", args...)
}

// table renders borderless, left-aligned columns separated by two spaces.
func (printer *Printer) table(table Table) error {
	if len(table.Columns) == 0 && len(table.Rows) == 0 {
		return nil
	}

	writer := tablewriter.NewWriter(printer.out)
	writer.SetAutoWrapText(false)
	writer.SetAutoFormatHeaders(false)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetCenterSeparator("")
	writer.SetColumnSeparator("")
	writer.SetRowSeparator("")
	writer.SetHeaderLine(false)
	writer.SetBorder(false)
	writer.SetTablePadding("  ")
	writer.SetNoWhiteSpace(true)

	if len(table.Columns) > 0 {
		writer.SetHeader(table.Columns)
	}
	writer.AppendBulk(table.Rows)
	writer.Render()
	return nil
}

func (printer *Printer) encode(writer io.Writer, payload any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
