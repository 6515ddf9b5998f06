package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendtrack/internal/core"
)

type fakeRenderer struct {
	calls  int
	series []core.CategoryAmount
	err    error
}

func (f *fakeRenderer) Render(_ context.Context, series []core.CategoryAmount, _ string) ([]byte, error) {
	f.calls++
	f.series = series
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png-bytes"), nil
}

type fakeSender struct {
	calls int
	last  Message
	err   error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.calls++
	f.last = msg
	return f.err
}

func TestExporterAttachesChart(t *testing.T) {
	renderer := &fakeRenderer{}
	sender := &fakeSender{}
	x := NewExporter(renderer, sender)

	if err := x.Export(context.Background(), sampleReport(t, nil), "$"); err != nil {
		t.Fatalf("export: %v", err)
	}

	if renderer.calls != 1 {
		t.Fatalf("expected one render call, got %d", renderer.calls)
	}
	if len(renderer.series) != 2 || renderer.series[0].Name != "Rent" {
		t.Fatalf("renderer got wrong series %v", renderer.series)
	}
	if sender.last.Attachment == nil || string(sender.last.Attachment.Data) != "png-bytes" {
		t.Fatalf("expected chart attachment, got %+v", sender.last.Attachment)
	}
	if sender.last.Attachment.Filename != "category_breakdown_2024-03.png" {
		t.Fatalf("unexpected attachment name %q", sender.last.Attachment.Filename)
	}
}

func TestExporterEmptyPeriodSkipsChart(t *testing.T) {
	renderer := &fakeRenderer{}
	sender := &fakeSender{}
	x := NewExporter(renderer, sender)

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	report, err := core.BuildReport(core.Period{Year: 2024, Month: time.March}, nil, nil, now)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	if err := x.Export(context.Background(), report, "$"); err != nil {
		t.Fatalf("export: %v", err)
	}

	if renderer.calls != 0 {
		t.Fatalf("renderer must not be called for an empty period")
	}
	if sender.calls != 1 || sender.last.Attachment != nil {
		t.Fatalf("expected mail without attachment, got %+v", sender.last)
	}
}

func TestExporterTransportFailure(t *testing.T) {
	cause := errors.New("smtp: connection refused")
	sender := &fakeSender{err: cause}
	x := NewExporter(&fakeRenderer{}, sender)

	err := x.Export(context.Background(), sampleReport(t, nil), "$")
	if err == nil {
		t.Fatalf("expected export error")
	}

	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("expected ExportError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped transport cause")
	}
}

func TestExporterRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("encode png")}
	sender := &fakeSender{}
	x := NewExporter(renderer, sender)

	if err := x.Export(context.Background(), sampleReport(t, nil), "$"); err == nil {
		t.Fatalf("expected render error")
	}
	if sender.calls != 0 {
		t.Fatalf("must not send after a failed render")
	}
}
