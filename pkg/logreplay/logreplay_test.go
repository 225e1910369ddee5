package logreplay

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStripPreambles(t *testing.T) {
	got := StripPreambles([]byte{0xFF, 0xFF, 0xFF, 0x02, 0x80, 0x00})
	want := []byte{0x02, 0x80, 0x00}
	if string(got) != string(want) {
		t.Errorf("StripPreambles() = % X, want % X", got, want)
	}
}

func TestStripPreamblesAllPreamble(t *testing.T) {
	got := StripPreambles([]byte{0xFF, 0xFF})
	if len(got) != 0 {
		t.Errorf("expected empty result, got % X", got)
	}
}

const sampleLog = `Master MAC on ("COM1") Tx: time 0.000 data "FF0280000082"
RCV_MSG ("COM1"): time 0.050 (ACK) 5+3 bytes "06AA0003010203AF"
Master MAC on ("COM1") Tx: time 1.000 data "FF0280000082"
RCV_MSG ("COM1"): time 1.050 (ACK) 5+3 bytes "06AA0003040506AB"
Master MAC on ("COM1") Tx: time 2.000 data "FFAABBCC"
`

func TestParseLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	requestResponses, err := ParseLogFile(path)
	if err != nil {
		t.Fatalf("ParseLogFile: %v", err)
	}
	if len(requestResponses) != 1 {
		t.Fatalf("expected one unique request, got %d", len(requestResponses))
	}

	provider := NewResponseProvider(requestResponses)
	if provider.RequestCount() != 1 {
		t.Errorf("RequestCount() = %d, want 1", provider.RequestCount())
	}
	if provider.TotalResponseCount() != 2 {
		t.Errorf("TotalResponseCount() = %d, want 2", provider.TotalResponseCount())
	}
}

func TestResponseProviderRoundRobin(t *testing.T) {
	request := []byte{0x02, 0x80, 0x00}
	responses := map[string][][]byte{
		string(request): {{0x01}, {0x02}, {0x03}},
	}
	provider := NewResponseProvider(responses)

	for _, want := range [][]byte{{0x01}, {0x02}, {0x03}, {0x01}} {
		got := provider.GetResponse(request)
		if len(got) != 1 || got[0] != want[0] {
			t.Errorf("GetResponse() = %v, want %v", got, want)
		}
	}
}

func TestResponseProviderUnknownRequestReturnsNil(t *testing.T) {
	provider := NewResponseProvider(map[string][][]byte{})
	if got := provider.GetResponse([]byte{0xAA}); got != nil {
		t.Errorf("expected nil for an unrecorded request, got %v", got)
	}
}

func TestIdleFramerAccumulatesUntilTimeout(t *testing.T) {
	f := NewIdleFramer()
	base := time.Unix(0, 0)

	f.Feed([]byte{0x02, 0x80}, base)
	if f.Ready(base.Add(10 * time.Millisecond)) {
		t.Fatal("should not be ready before the idle timeout elapses")
	}
	f.Feed([]byte{0x00}, base.Add(10*time.Millisecond))
	if f.Ready(base.Add(50 * time.Millisecond)) {
		t.Fatal("new bytes should reset the idle clock")
	}

	after := base.Add(10*time.Millisecond + f.Timeout + time.Millisecond)
	if !f.Ready(after) {
		t.Fatal("expected the framer to be ready once idle past the timeout")
	}
	got := f.Take()
	want := []byte{0x02, 0x80, 0x00}
	if string(got) != string(want) {
		t.Errorf("Take() = % X, want % X", got, want)
	}
	if f.Ready(after) {
		t.Fatal("framer should be empty after Take")
	}
}
