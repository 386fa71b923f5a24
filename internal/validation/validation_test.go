package validation

import "testing"

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		wantField string
	}{
		{"valid", "alice", "a@x.com", "pw", ""},
		{"empty username", "", "a@x.com", "pw", "username"},
		{"whitespace username", "   ", "a@x.com", "pw", "username"},
		{"empty email", "alice", "", "pw", "email"},
		{"email without at sign", "alice", "not-an-email", "pw", "email"},
		{"empty password", "alice", "a@x.com", "", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.username, tt.email, tt.password)
			checkFieldError(t, err, tt.wantField)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{"valid", "alice", "pw", ""},
		{"empty username", "", "pw", "username"},
		{"empty password", "alice", "", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.username, tt.password)
			checkFieldError(t, err, tt.wantField)
		})
	}
}

func TestValidateHabitTitle(t *testing.T) {
	if err := ValidateHabitTitle("meditate"); err != nil {
		t.Errorf("ValidateHabitTitle() returned error for valid title: %v", err)
	}
	checkFieldError(t, ValidateHabitTitle(""), "title")
	checkFieldError(t, ValidateHabitTitle("  \t"), "title")
}

func TestValidateDate(t *testing.T) {
	valid := []string{"2024-01-05", "1999-12-31", "2024-02-29"}
	for _, d := range valid {
		if err := ValidateDate(d); err != nil {
			t.Errorf("ValidateDate(%q) returned error: %v", d, err)
		}
	}

	invalid := []string{"", "05-01-2024", "2024/01/05", "2024-13-01", "2023-02-29", "today"}
	for _, d := range invalid {
		checkFieldError(t, ValidateDate(d), "date")
	}
}

func checkFieldError(t *testing.T, err error, wantField string) {
	t.Helper()

	if wantField == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}

	vErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error = %v (%T), want *Error for field %q", err, err, wantField)
	}
	if vErr.Field != wantField {
		t.Errorf("error field = %q, want %q", vErr.Field, wantField)
	}
}
