package transcription

import "testing"

func TestFormatDuration(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		seconds *float64
		want    string
	}{
		{nil, "N/A"},
		{f(-1), "N/A"},
		{f(0), "00:00"},
		{f(59.9), "00:59"},
		{f(60), "01:00"},
		{f(75.5), "01:15"},
		{f(3599), "59:59"},
		{f(3661), "61:01"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "N/A"},
		{-5, "N/A"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := FormatFileSize(tc.size); got != tc.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}
