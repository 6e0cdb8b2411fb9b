// pkg/zipmend/helpers_test.go
package zipmend

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.00 TB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"short.zip", 20, "short.zip"},
		{"/var/backups/archives/2024/photos.zip", 20, "...s/2024/photos.zip"},
		{"/tmp/a-very-long-archive-filename.zip", 20, "...hive-filename.zip"},
	}

	for _, tt := range tests {
		got := TruncateLeft(tt.path, tt.maxLen)
		if got != tt.want {
			t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
		}
		if len(got) > tt.maxLen {
			t.Errorf("TruncateLeft(%q, %d) returned %d chars", tt.path, tt.maxLen, len(got))
		}
	}
}
