package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite_HeaderThenRows(t *testing.T) {
	var buf bytes.Buffer

	columns := []string{"student_id", "roll_no", "first_name"}
	rows := [][]string{
		{"1", "R001", "Ann"},
		{"2", "R002", "Ben"},
	}

	if err := Write(&buf, columns, rows); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := "student_id,roll_no,first_name\n1,R001,Ann\n2,R002,Ben\n"
	if buf.String() != want {
		t.Fatalf("expected output %q, got %q", want, buf.String())
	}
}

func TestWrite_QuotesEmbeddedDelimiters(t *testing.T) {
	var buf bytes.Buffer

	columns := []string{"course_id", "course_name"}
	rows := [][]string{
		{"1", `Maths, Honours`},
		{"2", `Physics "Advanced"`},
	}

	if err := Write(&buf, columns, rows); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := "course_id,course_name\n1,\"Maths, Honours\"\n2,\"Physics \"\"Advanced\"\"\"\n"
	if buf.String() != want {
		t.Fatalf("expected output %q, got %q", want, buf.String())
	}
}

func TestWrite_NoRows(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(&buf, []string{"exam_id", "exam_type"}, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "exam_id,exam_type\n" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}

func TestWriteFile_CreatesDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")

	err := WriteFile(path, []string{"student_id"}, [][]string{{"1"}})
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back export: %v", err)
	}
	if string(data) != "student_id\n1\n" {
		t.Fatalf("unexpected file content %q", string(data))
	}
}

func TestWriteFile_FailsWhenDestinationUnopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "students.csv")

	if err := WriteFile(path, []string{"student_id"}, nil); err == nil {
		t.Fatal("expected error for unopenable destination")
	}
}
