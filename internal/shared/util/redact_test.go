package util

import "testing"

func TestEmailFingerprint(t *testing.T) {
	got := EmailFingerprint("A.B@Example.com ")
	if got != EmailFingerprint("a.b@example.com") {
		t.Fatalf("expected case and space insensitive fingerprint")
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 hex characters, got %d", len(got))
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("fingerprint contains non-hex character: %c", ch)
		}
	}
	if EmailFingerprint("  ") != "" {
		t.Fatalf("expected empty fingerprint for blank email")
	}
}
