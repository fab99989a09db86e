package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"spacexdash/internal/model"
)

const sampleCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
2,CCAFS LC-40,1,525,F9 v1.0  B0005,v1.0
3,VAFB SLC-4E,0,500,F9 v1.1  B1003,v1.1
,,,,,
4,KSC LC-39A,1,"5,300",F9 FT B1031.1,FT
`

func TestParseRows_SampleCSV(t *testing.T) {
	t.Parallel()

	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	records, skipped, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}

	want := []model.LaunchRecord{
		{RowNo: 2, LaunchSite: "CCAFS LC-40", PayloadMassKg: 0, BoosterVersionCategory: "v1.0", OutcomeClass: model.OutcomeFailure},
		{RowNo: 3, LaunchSite: "CCAFS LC-40", PayloadMassKg: 525, BoosterVersionCategory: "v1.0", OutcomeClass: model.OutcomeSuccess},
		{RowNo: 4, LaunchSite: "VAFB SLC-4E", PayloadMassKg: 500, BoosterVersionCategory: "v1.1", OutcomeClass: model.OutcomeFailure},
		{RowNo: 6, LaunchSite: "KSC LC-39A", PayloadMassKg: 5300, BoosterVersionCategory: "FT", OutcomeClass: model.OutcomeSuccess},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestMapColumns_NormalizesHeaders(t *testing.T) {
	t.Parallel()

	mapping, err := MapColumns([]string{"\ufeffLaunch  Site ", "PAYLOAD MASS (KG)", "class", "Booster Version Category", "class"})
	if err != nil {
		t.Fatalf("map columns: %v", err)
	}
	want := ColumnMapping{
		ColumnLaunchSite:     0,
		ColumnPayloadMass:    1,
		ColumnClass:          2,
		ColumnBoosterVersion: 3,
	}
	if diff := cmp.Diff(want, mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMapColumns_MissingColumn(t *testing.T) {
	t.Parallel()

	_, err := MapColumns([]string{"Launch Site", "class"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), `"payload mass (kg)"`) || !strings.Contains(err.Error(), `"booster version category"`) {
		t.Fatalf("error should name missing columns: %v", err)
	}
}

func TestParseRows_RejectsMalformedRows(t *testing.T) {
	t.Parallel()

	header := []string{"Launch Site", "Payload Mass (kg)", "Booster Version Category", "class"}
	cases := []struct {
		name   string
		row    []string
		column string
	}{
		{name: "bad class", row: []string{"CCAFS LC-40", "500", "v1.0", "2"}, column: ColumnClass},
		{name: "text payload", row: []string{"CCAFS LC-40", "heavy", "v1.0", "1"}, column: ColumnPayloadMass},
		{name: "negative payload", row: []string{"CCAFS LC-40", "-1", "v1.0", "1"}, column: ColumnPayloadMass},
		{name: "missing payload", row: []string{"CCAFS LC-40"}, column: ColumnPayloadMass},
		{name: "empty site", row: []string{" ", "500", "v1.0", "1"}, column: ColumnLaunchSite},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ParseRows([][]string{header, tc.row})
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected RowError, got %v", err)
			}
			if rowErr.RowNo != 2 || rowErr.Column != tc.column {
				t.Fatalf("row error = row %d column %q, want row 2 column %q", rowErr.RowNo, rowErr.Column, tc.column)
			}
		})
	}
}

func TestParseRows_NoHeader(t *testing.T) {
	t.Parallel()

	if _, _, err := ParseRows(nil); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
}

func TestParseFile_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spacex_launch_dash.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	res, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if res.Format != FormatCSV {
		t.Fatalf("format = %s, want csv", res.Format)
	}
	if len(res.Records) != 4 {
		t.Fatalf("records = %d, want 4", len(res.Records))
	}
}

func TestParseFile_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	rows := [][]any{
		{"Launch Site", "Payload Mass (kg)", "Booster Version Category", "class"},
		{"CCAFS LC-40", 500, "v1", 1},
		{"KSC LC-39A", 5000.5, "v2", 0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "launches.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}

	res, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	want := []model.LaunchRecord{
		{RowNo: 2, LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, BoosterVersionCategory: "v1", OutcomeClass: model.OutcomeSuccess},
		{RowNo: 3, LaunchSite: "KSC LC-39A", PayloadMassKg: 5000.5, BoosterVersionCategory: "v2", OutcomeClass: model.OutcomeFailure},
	}
	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_UnsupportedAndMissing(t *testing.T) {
	t.Parallel()

	if _, err := ParseFile("launches.json", Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.csv"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
