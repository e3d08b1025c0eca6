// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package srp

import "testing"

func TestSeverityString(t *testing.T) {
	if s := SeverityHigh.String(); s != "High" {
		t.Fatalf("String():\nhave %s\nwant High", s)
	}
	if s := Severity(99).String(); s != "Severity(?)" {
		t.Fatalf("String():\nhave %s\nwant Severity(?)", s)
	}
}

func TestMessageTypeString(t *testing.T) {
	if s := TypeWarning.String(); s != "Warning" {
		t.Fatalf("String():\nhave %s\nwant Warning", s)
	}
}

func TestDefaultMessageCallbackDiscards(t *testing.T) {
	// Must not panic; there is nothing else to assert about a no-op.
	defaultMessageCallback(TypeError, SeverityHigh, "src", "text", nil)
}
