package parser

import (
	"strings"
	"testing"
)

const samplePRI = "1 2 PRI~\n266 1 1 2 500 740~\n267 1 1 2 1 310 1 1 2~\n267 1 285~\n256 1 1 2 20 301~\nbad line~\nx 1 2~\n257 1 1 2 9 430~\n"

func TestParseRecords_TagsAndFields(t *testing.T) {
	recs := ParseRecords(samplePRI)

	if len(recs) != 6 {
		t.Fatalf("expected 6 records, got %d: %+v", len(recs), recs)
	}
	if recs[1].Tag != "266" {
		t.Errorf("expected tag 266, got %q", recs[1].Tag)
	}
	want := []string{"1", "2", "500", "740"}
	if strings.Join(recs[1].Fields, ",") != strings.Join(want, ",") {
		t.Errorf("expected fields %v, got %v", want, recs[1].Fields)
	}
	if recs.Count("267") != 2 {
		t.Errorf("expected 2 tree data records, got %d", recs.Count("267"))
	}
}

func TestParseRecords_KeepsEmptyFieldRecord(t *testing.T) {
	recs := ParseRecords("266 1~")
	if len(recs) != 1 || len(recs[0].Fields) != 0 {
		t.Errorf("expected one record with no fields, got %+v", recs)
	}
}

func TestPRIParser_Parse(t *testing.T) {
	f, err := (&PRIParser{}).Parse(strings.NewReader(samplePRI), "harvest.pri")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "harvest.pri" {
		t.Errorf("expected name harvest.pri, got %q", f.Name)
	}
	if f.SizeBytes != int64(len(samplePRI)) {
		t.Errorf("expected size %d, got %d", len(samplePRI), f.SizeBytes)
	}
	if len(f.Records) != 6 {
		t.Errorf("expected 6 records, got %d", len(f.Records))
	}
}

func TestPRIParser_UTF16WithBOM(t *testing.T) {
	text := "266 1 1 2~267 1 1 3~"
	raw := []byte{0xFF, 0xFE}
	for _, r := range text {
		raw = append(raw, byte(r), 0)
	}

	f, err := (&PRIParser{}).Parse(strings.NewReader(string(raw)), "utf16.pri")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Records) != 2 || f.Records[1].Fields[1] != "3" {
		t.Errorf("expected decoded UTF-16 records, got %+v", f.Records)
	}
}

func TestForFile(t *testing.T) {
	if _, err := ForFile("a.PRI"); err != nil {
		t.Errorf("expected .PRI supported, got %v", err)
	}
	if _, err := ForFile("a.pdf"); err == nil {
		t.Error("expected error for .pdf")
	}
	if _, err := ForFile("notes.txt"); err == nil {
		t.Error("expected .txt unsupported")
	}
}
