package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go-pharmacy-dashboard/internal/chart"
	"go-pharmacy-dashboard/internal/model"
)

func newTestCharts(t *testing.T) (ChartService, time.Time) {
	t.Helper()
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	far := now.AddDate(1, 0, 0)

	aspirin := medicine("Aspirin", "Analgesic", "5", far)
	expired := medicine("Expired", "Analgesic", "5", now.AddDate(0, 0, -3))
	insulin := medicine("Insulin", "Hormone", "40", far)

	sales := &fakeSaleRepo{sales: []model.Sale{
		sale(now, "100", "0", model.PaymentCash),
		sale(now.AddDate(0, 0, -5), "300", "0", model.PaymentCard),
	}}
	inv := &fakeInventoryRepo{items: []model.InventoryItem{
		stockItem(aspirin, 30, 10),
		stockItem(insulin, 4, 10),
	}}
	meds := &fakeMedicineRepo{medicines: []model.Medicine{aspirin, expired, insulin}}
	users := &fakeUserRepo{users: []model.User{pharmacist("Marie"), pharmacist("Jean")}}

	reports := newTestReports(sales, inv, meds, users)
	return NewChartService(reports, inv, meds), now
}

func TestChartSalesVolume(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartSalesVolume, ChartOptions{Now: now})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if doc.Kind != chart.KindBar || len(doc.Bars) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	// today 1 sale, month 2 sales: the month bar is the full height
	if doc.Bars[0].Value != 1 || doc.Bars[1].Value != 2 {
		t.Errorf("values = %v, %v", doc.Bars[0].Value, doc.Bars[1].Value)
	}
	if doc.Bars[0].Label != "Today" || doc.Bars[1].Label != "This Month" {
		t.Errorf("labels = %q, %q", doc.Bars[0].Label, doc.Bars[1].Label)
	}
}

func TestChartRevenue(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartRevenue, ChartOptions{Now: now})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if doc.Title != "Revenue Comparison" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Bars[0].Value != 100 || doc.Bars[1].Value != 400 {
		t.Errorf("values = %v, %v", doc.Bars[0].Value, doc.Bars[1].Value)
	}
	if doc.Bars[0].Color != colorRed {
		t.Errorf("color = %q", doc.Bars[0].Color)
	}
}

func TestChartInventoryStatus(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartInventoryStatus, ChartOptions{Now: now})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if doc.Kind != chart.KindPie || len(doc.Slices) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Slices[0].Value != 1 || doc.Slices[1].Value != 1 {
		t.Errorf("normal/low = %v/%v, want 1/1", doc.Slices[0].Value, doc.Slices[1].Value)
	}
}

func TestChartMedicineStatus(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartMedicineStatus, ChartOptions{Now: now})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if doc.Slices[0].Value != 2 || doc.Slices[1].Value != 1 {
		t.Errorf("active/expired = %v/%v, want 2/1", doc.Slices[0].Value, doc.Slices[1].Value)
	}
}

func TestChartStockLevels(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartStockLevels, ChartOptions{Now: now})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if doc.Kind != chart.KindProgress || len(doc.Progress) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	// 30 of max 20 clamps, 4 of 20 is 20%
	if doc.Progress[0].FilledWidthPercent != 100 {
		t.Errorf("aspirin = %v, want 100", doc.Progress[0].FilledWidthPercent)
	}
	if doc.Progress[1].FilledWidthPercent != 20 {
		t.Errorf("insulin = %v, want 20", doc.Progress[1].FilledWidthPercent)
	}
	if doc.Progress[1].Fill.Color != colorRed {
		t.Errorf("low stock colour = %q", doc.Progress[1].Fill.Color)
	}
}

func TestChartPharmacistPerformance(t *testing.T) {
	svc, now := newTestCharts(t)
	doc, err := svc.Chart(ChartPharmacistPerformance, ChartOptions{Now: now, Period: "year"})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if !strings.HasSuffix(doc.Title, "This Year") {
		t.Errorf("Title = %q", doc.Title)
	}
	if len(doc.Bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(doc.Bars))
	}
	for _, b := range doc.Bars {
		if b.Color != colorBlue {
			t.Errorf("bar %d colour = %q", b.Index, b.Color)
		}
	}
}

func TestChartUnknown(t *testing.T) {
	svc, now := newTestCharts(t)
	if _, err := svc.Chart("nope", ChartOptions{Now: now}); !errors.Is(err, ErrUnknownChart) {
		t.Errorf("err = %v, want ErrUnknownChart", err)
	}
}

func TestChartEveryName(t *testing.T) {
	svc, now := newTestCharts(t)
	for _, name := range ChartNames {
		if _, err := svc.Chart(name, ChartOptions{Now: now}); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestCustomChartValidates(t *testing.T) {
	svc, _ := newTestCharts(t)
	_, err := svc.Custom(chart.KindPie, "bad", chart.Input{Values: []float64{1, -1}}, chart.Geometry{})
	var invalid *chart.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidInputError", err)
	}

	doc, err := svc.Custom(chart.KindPie, "ok", chart.Input{Values: []float64{1, 3}}, chart.Geometry{})
	if err != nil {
		t.Fatalf("Custom: %v", err)
	}
	if doc.Width != chart.DefaultGeometry().Width {
		t.Errorf("Width = %v, want default geometry", doc.Width)
	}
	if len(doc.Slices) != 2 || doc.Slices[1].Percent != 75 {
		t.Errorf("slices = %+v", doc.Slices)
	}
}
