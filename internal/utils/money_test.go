package utils

import "testing"

func TestPlatformFeeTenPercent(t *testing.T) {
	fee := PlatformFee(1000, 0.10)
	if fee != 100 {
		t.Fatalf("fee for 1000 at 10%% should be 100, got %d", fee)
	}
	if net := 1000 - fee; net != 900 {
		t.Fatalf("net for 1000 should be 900, got %d", net)
	}
}

func TestPlatformFeeRoundsToNearestRupee(t *testing.T) {
	cases := []struct {
		amount int64
		want   int64
	}{
		{999, 100},  // 99.9 rounds up
		{994, 99},   // 99.4 rounds down
		{995, 100},  // 99.5 rounds half away from zero
		{1, 0},      // 0.1 rounds down
		{5, 1},      // 0.5 rounds up
		{0, 0},
	}
	for _, tc := range cases {
		if got := PlatformFee(tc.amount, 0.10); got != tc.want {
			t.Fatalf("PlatformFee(%d, 0.10) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestFormatINRIndianGrouping(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rs 0"},
		{999, "Rs 999"},
		{1000, "Rs 1,000"},
		{12345, "Rs 12,345"},
		{123456, "Rs 1,23,456"},
		{1234567, "Rs 12,34,567"},
		{12345678, "Rs 1,23,45,678"},
		{-45000, "-Rs 45,000"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Fatalf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestParseINRToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"Rs 1,00,000", 100000},
		{"Rs. 2500", 2500},
		{"₹1000", 1000},
		{"1000", 1000},
		{"  12,345 ", 12345},
	}
	for _, tc := range cases {
		got, err := ParseINRToInt(tc.in)
		if err != nil {
			t.Fatalf("ParseINRToInt(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseINRToInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParseINRToInt("Rs "); err == nil {
		t.Fatalf("expected error for empty amount")
	}
	if _, err := ParseINRToInt("abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
