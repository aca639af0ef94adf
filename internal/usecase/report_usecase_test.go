package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

// approvedWorkflow leaves one approved rendition with a single Materiales expense.
func approvedWorkflow(t *testing.T) (*workflow, entities.Rendition) {
	t.Helper()
	ctx := context.Background()
	w := newWorkflow(t, time.Date(2025, 5, 2, 15, 0, 0, 0, time.UTC))
	sr := w.mustRequest(t, w.mustProject(t).ID)
	rd := w.mustRendition(t, sr.ID)
	if _, err := w.renditions.AddExpense(ctx, w.tech, rd.ID, ExpenseInput{Category: "Materiales", Amount: 50000}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	approved, err := w.renditions.Approve(ctx, w.admin, rd.ID, "")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	return w, approved
}

func TestReportUseCase_Renditions(t *testing.T) {
	ctx := context.Background()
	w, _ := approvedWorkflow(t)

	t.Run("admins only", func(t *testing.T) {
		if _, err := w.reports.Renditions(ctx, w.tech, DateRange{}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		r := DateRange{From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
		if _, err := w.reports.Renditions(ctx, w.admin, r); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("default range covers the last month", func(t *testing.T) {
		report, err := w.reports.Renditions(ctx, w.admin, DateRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Range.From.Equal(time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected range start: %v", report.Range.From)
		}
		if len(report.ByStatus) != 1 || report.ByStatus[0].Key != string(entities.RenditionStatusApproved) {
			t.Fatalf("unexpected status buckets: %+v", report.ByStatus)
		}
		if len(report.ExpensesByCategory) != 1 {
			t.Fatalf("unexpected categories: %+v", report.ExpensesByCategory)
		}
		if got := report.ExpensesByCategory[0]; got.Category != "Materiales" || got.TotalAmount != 50000 || got.Count != 1 {
			t.Fatalf("unexpected category total: %+v", got)
		}
		if len(report.ByTechnician) != 1 || report.ByTechnician[0].Name != "Tomas Test" {
			t.Fatalf("unexpected technician counts: %+v", report.ByTechnician)
		}
	})

	t.Run("range excludes older data", func(t *testing.T) {
		r := DateRange{From: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)}
		report, err := w.reports.Renditions(ctx, w.admin, r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.ByStatus) != 0 || len(report.ExpensesByCategory) != 0 {
			t.Fatalf("expected an empty report, got %+v", report)
		}
	})
}

func TestReportUseCase_TechnicianPerformance(t *testing.T) {
	w, _ := approvedWorkflow(t)

	perf, err := w.reports.TechnicianPerformance(context.Background(), w.admin, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(perf) != 1 {
		t.Fatalf("expected one technician, got %+v", perf)
	}
	if perf[0].RenditionsCreated != 1 || perf[0].RenditionsApproved != 1 || perf[0].ApprovalRate != 100 {
		t.Fatalf("unexpected performance: %+v", perf[0])
	}
}

func TestReportUseCase_ExportRenditions(t *testing.T) {
	w, approved := approvedWorkflow(t)

	var buf bytes.Buffer
	if err := w.reports.ExportRenditions(context.Background(), w.admin, DateRange{}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("expected a readable workbook: %v", err)
	}
	defer f.Close()

	folio, err := f.GetCellValue("Rendiciones", "A2")
	if err != nil || folio != approved.Folio {
		t.Fatalf("expected folio %s in A2, got %q err=%v", approved.Folio, folio, err)
	}
	number, _ := f.GetCellValue("Rendiciones", "B2")
	if number != "SR-2505-0001" {
		t.Fatalf("expected request number in B2, got %q", number)
	}
	category, _ := f.GetCellValue("Gastos por categoría", "A2")
	total, _ := f.GetCellValue("Gastos por categoría", "C2")
	if category != "Materiales" || total != "50000" {
		t.Fatalf("unexpected summary row: %q %q", category, total)
	}
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		t.Fatalf("expected the default sheet to be removed")
	}
}
