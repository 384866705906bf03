package validation

import "testing"

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "test@domain.cl", true},
		{"uppercase allowed by char class", "Test@Domain.CL", true},
		{"digits in local and domain", "user1@d0main.com", true},
		{"missing at sign", "testdomain.cl", false},
		{"missing dot", "test@domaincl", false},
		{"empty", "", false},
		{"plus in local part", "test+tag@domain.cl", false},
		{"subdomain", "test@mail.domain.cl", false},
		{"digits in tld", "test@domain.c1", false},
		{"trailing garbage", "test@domain.cl ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.want {
				t.Fatalf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
