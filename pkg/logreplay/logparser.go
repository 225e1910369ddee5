// Package logreplay provides the log-replay responder: it parses a
// captured HART communication log into request/response pairs and serves
// them back round-robin, as a drop-in substitute for a simulated device.
package logreplay

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
)

var (
	txPattern = regexp.MustCompile(`Master MAC on \("[^"]+"\) Tx: time [\d.]+ data "([0-9A-Fa-f]+)"`)
	rxPattern = regexp.MustCompile(`RCV_MSG \("[^"]+"\): time [\d.]+ \(ACK\) \d+\+\d+ bytes "([0-9A-Fa-f]+)"`)
)

// StripPreambles removes the leading 0xFF synchronization bytes from a
// captured frame.
func StripPreambles(data []byte) []byte {
	i := 0
	for i < len(data) && data[i] == 0xFF {
		i++
	}
	return data[i:]
}

// ParseLogFile reads a HART communication log and returns every recorded
// request (preambles stripped) mapped to its recorded responses, in the
// order they were captured.
func ParseLogFile(path string) (map[string][][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer f.Close()

	requestResponses := map[string][][]byte{}
	var pendingRequest []byte
	havePending := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := txPattern.FindStringSubmatch(line); m != nil {
			raw, err := hex.DecodeString(m[1])
			if err != nil {
				continue
			}
			pendingRequest = StripPreambles(raw)
			havePending = true
			continue
		}

		if m := rxPattern.FindStringSubmatch(line); m != nil && havePending {
			response, err := hex.DecodeString(m[1])
			if err != nil {
				continue
			}
			key := string(pendingRequest)
			requestResponses[key] = append(requestResponses[key], response)
			havePending = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file %s: %w", path, err)
	}

	return requestResponses, nil
}

// ResponseProvider serves recorded responses for a given request,
// round-robining through repeated captures of the same request.
type ResponseProvider struct {
	requestResponses map[string][][]byte
	nextIndex        map[string]int
}

// NewResponseProvider wraps a parsed log's request/response table.
func NewResponseProvider(requestResponses map[string][][]byte) *ResponseProvider {
	return &ResponseProvider{requestResponses: requestResponses, nextIndex: map[string]int{}}
}

// GetResponse returns the next recorded response for request (preambles
// already stripped), or nil if the log has no matching request.
func (p *ResponseProvider) GetResponse(request []byte) []byte {
	key := string(request)
	responses, ok := p.requestResponses[key]
	if !ok || len(responses) == 0 {
		return nil
	}
	index := p.nextIndex[key]
	response := responses[index]
	p.nextIndex[key] = (index + 1) % len(responses)
	return response
}

// RequestCount returns the number of distinct requests recorded in the log.
func (p *ResponseProvider) RequestCount() int {
	return len(p.requestResponses)
}

// TotalResponseCount returns the total number of responses recorded across
// every request, including repeats.
func (p *ResponseProvider) TotalResponseCount() int {
	total := 0
	for _, responses := range p.requestResponses {
		total += len(responses)
	}
	return total
}
