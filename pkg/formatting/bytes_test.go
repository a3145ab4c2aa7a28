package formatting_test

import (
	"testing"

	"github.com/JaimeStill/newsdesk/pkg/formatting"
)

const (
	kb = int64(1) << 10
	mb = kb << 10
	gb = mb << 10
)

func TestParseBytes(t *testing.T) {
	valid := map[string]int64{
		"0":       0,
		"2048":    2048,
		"512B":    512,
		"1KB":     kb,
		"10MB":    10 * mb,
		"10mb":    10 * mb,
		"2 Gb":    2 * gb,
		" 1.5MB ": mb + mb/2,
		"1PB":     gb << 20,
	}
	for input, want := range valid {
		got, err := formatting.ParseBytes(input)
		if err != nil {
			t.Errorf("ParseBytes(%q): unexpected error %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseBytes(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "   ", "MB", "-5MB", "10 XB", "1.2.3KB"} {
		if _, err := formatting.ParseBytes(input); err == nil {
			t.Errorf("ParseBytes(%q): expected error", input)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 2, "0 B"},
		{1023, 2, "1023 B"},
		{kb, 0, "1 KB"},
		{mb + mb/2, 1, "1.5 MB"},
		{10 * mb, 0, "10 MB"},
		{3 * gb, 2, "3.00 GB"},
		{kb, -1, "1 KB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}

func TestUploadLimitRendersAsConfigured(t *testing.T) {
	limit, err := formatting.ParseBytes("10MB")
	if err != nil {
		t.Fatal(err)
	}
	if got := formatting.FormatBytes(limit, 0); got != "10 MB" {
		t.Errorf("FormatBytes(ParseBytes(10MB)) = %q", got)
	}
}
