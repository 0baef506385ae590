package utils

import "testing"

func TestGenerateOTPShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTP()
		if !IsValidOTP(code) {
			t.Fatalf("generated OTP %q is not six numeric digits", code)
		}
	}
}

func TestIsValidOTP(t *testing.T) {
	cases := map[string]bool{
		"123456":  true,
		"000000":  true,
		"12345":   false,
		"1234567": false,
		"12a456":  false,
		"12 456":  false,
		"":        false,
		"12345６":  false, // full-width digit
	}
	for code, want := range cases {
		if got := IsValidOTP(code); got != want {
			t.Errorf("IsValidOTP(%q) = %v, want %v", code, got, want)
		}
	}
}
