package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spacexdash/internal/model"
	"spacexdash/internal/parser"
	"spacexdash/internal/store"
)

const testCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
2,CCAFS LC-40,1,2500,F9 FT B1021.1,FT
3,KSC LC-39A,1,5300,F9 FT B1031.1,FT
4,KSC LC-39A,0,3100,F9 B4 B1040.1,B4
5,VAFB SLC-4E,0,9600,F9 B4 B1041.1,B4
`

func writeTestData(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spacex_launch_dash.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	s, err := store.Load(writeTestData(t), parser.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var buf bytes.Buffer
	sel := model.Selection{Site: "KSC LC-39A", Payload: model.PayloadRange{Low: 0, High: 10000}}
	if err := writeSummary(&buf, s, sel, false); err != nil {
		t.Fatalf("summary: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Success vs Failure for KSC LC-39A",
		"Failure",
		"Success",
		"Payload vs. Launch Outcome for KSC LC-39A",
		"5300",
		"3100",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "CCAFS LC-40") {
		t.Fatalf("summary should only list the selected site:\n%s", out)
	}
}

func TestSummaryCommand(t *testing.T) {
	data := writeTestData(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"summary", "--config", cfgPath, "--data", data, "--high", "3000", "--markdown"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v; stderr=%s", err, errOut.String())
	}

	got := out.String()
	for _, want := range []string{"| KSC LC-39A", "| CCAFS LC-40", "2500"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "9600") {
		t.Fatalf("payload above --high should be filtered:\n%s", got)
	}
}

func TestSummaryCommand_MissingDataset(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"summary", "--config", cfgPath, "--data", filepath.Join(t.TempDir(), "missing.csv")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("expected load dataset error, got %v", err)
	}
}
