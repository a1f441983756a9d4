package media

import (
	"encoding/json"
	"testing"
)

func TestServiceKindString(t *testing.T) {
	tests := []struct {
		kind ServiceKind
		want string
	}{
		{YouTube, "youtube"},
		{Vimeo, "vimeo"},
		{Unknown, "unknown"},
		{ServiceKind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ServiceKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Result{Type: Vimeo, Embed: "http://player.vimeo.com/video/76979871?autoplay=1"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"type":"vimeo","embed":"http://player.vimeo.com/video/76979871?autoplay=1"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.Type != Vimeo {
		t.Errorf("Unmarshal() type = %v, want vimeo", back.Type)
	}
}

func TestServiceKindRejectsUnknown(t *testing.T) {
	if _, err := json.Marshal(ServiceKind(42)); err == nil {
		t.Error("Marshal(unknown kind) should fail")
	}

	var k ServiceKind
	if err := k.UnmarshalText([]byte("dailymotion")); err == nil {
		t.Error("UnmarshalText(dailymotion) should fail")
	}
}

func TestZeroResultDoesNotMarshal(t *testing.T) {
	var zero Result
	if zero.Type != Unknown {
		t.Errorf("zero Result type = %v, want unknown", zero.Type)
	}
	if _, err := json.Marshal(zero); err == nil {
		t.Error("Marshal(zero Result) should fail instead of reading as a service")
	}
}
