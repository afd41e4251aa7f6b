package model

import "testing"

func TestGenderValid(t *testing.T) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if !g.Valid() {
			t.Errorf("Gender %q should be valid", g)
		}
	}
	for _, g := range []Gender{"", "male", "MALE", "Unknown", "Femal"} {
		if g.Valid() {
			t.Errorf("Gender %q should be invalid", g)
		}
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceAbsent} {
		if !s.Valid() {
			t.Errorf("AttendanceStatus %q should be valid", s)
		}
	}
	for _, s := range []AttendanceStatus{"", "present", "Late", "ABSENT"} {
		if s.Valid() {
			t.Errorf("AttendanceStatus %q should be invalid", s)
		}
	}
}

func TestExamTypeValid(t *testing.T) {
	for _, e := range []ExamType{ExamHalfYearly, ExamFinalTerm} {
		if !e.Valid() {
			t.Errorf("ExamType %q should be valid", e)
		}
	}
	for _, e := range []ExamType{"", "Midterm", "half yearly", "Final term", "Final"} {
		if e.Valid() {
			t.Errorf("ExamType %q should be invalid", e)
		}
	}
}
