package markdown

import (
	"strings"
	"testing"
)

func runTables(t *testing.T, input string, cfg TableConfig) (string, Diagnostics) {
	t.Helper()
	lines := splitLines(input)
	src, ids := unprotectedSource(lines)
	ls, diags := formatTables(classify(lines, src, ids), cfg)
	out := make([]string, len(ls))
	for i, cl := range ls {
		out[i] = cl.text
	}
	return joinLines(out), diags
}

func TestTableReflow(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|Name|Age|\n|---|---|\n|Alice|30|\n|Bob|7|"
	got, diags := runTables(t, input, cfg)
	want := strings.Join([]string{
		"| Name  | Age |",
		"| ----- | --- |",
		"| Alice | 30  |",
		"| Bob   | 7   |",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestTableAlignmentMarkers(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|L|R|C|\n|:---|---:|:-:|\n|a|b|c|"
	got, _ := runTables(t, input, cfg)
	want := strings.Join([]string{
		"| L   |   R |  C  |",
		"| :-- | --: | :-: |",
		"| a   |   b |  c  |",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestTableColumnCountInvariant(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|a|b|\n|---|---|\n|only one|\n|x|y|z|extra|"
	got, diags := runTables(t, input, cfg)

	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if n := strings.Count(line, "|") - strings.Count(line, "\\|"); n != 3 {
			t.Errorf("row does not have exactly 2 columns: %q", line)
		}
	}

	var warnings []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			warnings = append(warnings, d)
		}
	}
	if len(warnings) != 1 || warnings[0].Line != 4 {
		t.Errorf("expected one truncation warning at line 4, got %v", warnings)
	}
}

func TestTableEscapedPipeIsLiteral(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|cmd|desc|\n|---|---|\n|a \\| b|pipe|"
	got, _ := runTables(t, input, cfg)
	if !strings.Contains(got, "a \\| b") {
		t.Errorf("escaped pipe should stay inside its cell: %q", got)
	}
}

func TestTableMinColumnWidth(t *testing.T) {
	cfg := TableConfig{Align: true, MinColumnWidth: 8, Padding: 1}
	got, _ := runTables(t, "|a|\n|---|\n|b|", cfg)
	want := "| a        |\n| -------- |\n| b        |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTableWideRunes(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|name|val|\n|---|---|\n|日本語|x|"
	got, _ := runTables(t, input, cfg)
	// 日本語 is 6 columns wide; the ASCII header pads to match.
	if !strings.Contains(got, "| name   |") {
		t.Errorf("display width not used for padding:\n%s", got)
	}
}

func TestTableDisabled(t *testing.T) {
	cfg := TableConfig{Align: false}
	input := "|Name|Age|\n|---|---|\n|Alice|30|"
	got, _ := runTables(t, input, cfg)
	if got != input+"\n" {
		t.Errorf("align=false must leave tables untouched: %q", got)
	}
}

func TestRunWithoutDelimiterRowLeftAlone(t *testing.T) {
	cfg := DefaultConfig().Tables
	input := "|just|cells|\n|more|cells|"
	got, _ := runTables(t, input, cfg)
	if got != input+"\n" {
		t.Errorf("rows without a delimiter are not a table: %q", got)
	}
}
