package domain

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{" Ada", "", "Ada"},
		{"", " Lovelace ", "Lovelace"},
		{"Ada ", " King", "Ada King"},
		{"  ", "\t", ""},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.first, tt.last); got != tt.want {
			t.Fatalf("DisplayName(%q, %q): expected %q, got %q", tt.first, tt.last, tt.want, got)
		}
	}
}

func TestNewProfile_DisplayNameMatchesHelper(t *testing.T) {
	p := NewProfile(&Claims{UserID: "1", FirstName: " Ada", LastName: ""})
	if p.DisplayName != DisplayName(" Ada", "") {
		t.Fatalf("expected %q, got %q", DisplayName(" Ada", ""), p.DisplayName)
	}
}
