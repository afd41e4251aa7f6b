package validator

import (
	"reflect"
	"testing"
)

func TestPhone_AcceptsTenDigitsLeadingSixToNine(t *testing.T) {
	for _, s := range []string{"9876543210", "6000000000", "7123456789", "8999999999"} {
		if !Phone(s) {
			t.Fatalf("expected %q to be a valid phone", s)
		}
	}
}

func TestPhone_RejectsEverythingElse(t *testing.T) {
	cases := []string{
		"",
		"1234567890",  // leading digit below 6
		"5876543210",  // leading digit below 6
		"987654321",   // 9 digits
		"98765432100", // 11 digits
		"98765 4321",  // embedded space
		"987654321a",  // non-digit
		"+919876543210", // prefixed form is not accepted
		" 9876543210",
		"9876543210 ",
	}
	for _, s := range cases {
		if Phone(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestRequired_ListsAllBlankFieldsSorted(t *testing.T) {
	missing := Required(map[string]string{
		"roll_no":    "",
		"first_name": "Ann",
		"phone":      "   ",
		"email":      "a@x.com",
		"address":    "",
	})

	want := []string{"address", "phone", "roll_no"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("expected missing %v, got %v", want, missing)
	}
}

func TestRequired_AllPresent(t *testing.T) {
	missing := Required(map[string]string{"roll_no": "R001", "first_name": "Ann"})
	if len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestOneOf(t *testing.T) {
	if !OneOf("Present", "Present", "Absent") {
		t.Fatal("expected Present to be allowed")
	}
	if OneOf("Late", "Present", "Absent") {
		t.Fatal("expected Late to be rejected")
	}
	if OneOf("present", "Present", "Absent") {
		t.Fatal("membership is case sensitive")
	}
}
