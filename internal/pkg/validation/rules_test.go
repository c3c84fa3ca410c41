package validation

import (
	"strings"
	"testing"
)

func TestIsCorpsName(t *testing.T) {
	valid := []string{"А", "Б", "ГЛК", "Corps 7", "К-2"}
	for _, name := range valid {
		if !IsCorpsName(name) {
			t.Errorf("IsCorpsName(%q) = false", name)
		}
	}
	invalid := []string{"", " А", "-А", strings.Repeat("А", CorpsNameMaxLength+1)}
	for _, name := range invalid {
		if IsCorpsName(name) {
			t.Errorf("IsCorpsName(%q) = true", name)
		}
	}
}

func TestIsRoomNumber(t *testing.T) {
	valid := []string{"100", "А-100", "лабФИЗ", "305а", "7/2"}
	for _, n := range valid {
		if !IsRoomNumber(n) {
			t.Errorf("IsRoomNumber(%q) = false", n)
		}
	}
	invalid := []string{"", "10 0", "#12"}
	for _, n := range invalid {
		if IsRoomNumber(n) {
			t.Errorf("IsRoomNumber(%q) = true", n)
		}
	}
}

func TestIsWeekday(t *testing.T) {
	for d := 1; d <= 7; d++ {
		if !IsWeekday(d) {
			t.Errorf("IsWeekday(%d) = false", d)
		}
	}
	if IsWeekday(0) || IsWeekday(8) {
		t.Error("out of range weekday accepted")
	}
}

func TestStringValidationOptional(t *testing.T) {
	if !NewStringValidation("").WithRequired(false).WithMinLength(3).Validate() {
		t.Error("empty optional value must pass")
	}
	if NewStringValidation("ab").WithMinLength(3).Validate() {
		t.Error("short value must fail")
	}
}
