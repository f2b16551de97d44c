package crisis

import "testing"

func TestScanDetectsSuicidalIdeation(t *testing.T) {
	verdict := Scan("I want to kill myself")
	if !verdict.Detected {
		t.Fatal("expected crisis to be detected")
	}
	if verdict.Response == nil {
		t.Fatal("expected support bundle on detection")
	}
	if len(verdict.Response.Resources) == 0 {
		t.Fatal("expected hotline resources in support bundle")
	}
}

func TestScanIsCaseInsensitive(t *testing.T) {
	if !Scan("I WANT TO DIE").Detected {
		t.Fatal("expected uppercase input to be detected")
	}
}

func TestScanMatchesSubstrings(t *testing.T) {
	if !Scan("sometimes I think about self-harm late at night").Detected {
		t.Fatal("expected embedded phrase to be detected")
	}
}

func TestScanIgnoresNeutralText(t *testing.T) {
	if Scan("I had a great day").Detected {
		t.Fatal("did not expect detection for neutral text")
	}
}

func TestScanEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   "} {
		verdict := Scan(text)
		if verdict.Detected {
			t.Fatalf("did not expect detection for %q", text)
		}
		if verdict.Response != nil {
			t.Fatalf("did not expect support bundle for %q", text)
		}
	}
}
