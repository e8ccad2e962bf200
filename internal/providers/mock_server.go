// Package providers holds shared fixtures for the HTTP adapter tests:
// a scriptable provider server plus canned request and response payloads.
package providers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockResponse is one scripted reply from the mock provider.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string
}

// MockServer simulates a provider API endpoint. Each path serves a scripted
// sequence of responses; once the sequence is exhausted the final response
// repeats, so steady-state tests only script one reply.
type MockServer struct {
	server *httptest.Server

	mu     sync.Mutex
	hits   int
	queues map[string]*responseQueue
}

type responseQueue struct {
	responses []MockResponse
	next      int
}

func (q *responseQueue) pop() MockResponse {
	r := q.responses[q.next]
	if q.next < len(q.responses)-1 {
		q.next++
	}
	return r
}

// NewMockServer starts a mock provider server. Callers own Close.
func NewMockServer() *MockServer {
	ms := &MockServer{queues: make(map[string]*responseQueue)}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handle))
	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string { return ms.server.URL }

// Close shuts down the mock server.
func (ms *MockServer) Close() { ms.server.Close() }

// SetResponse scripts a single steady response for a path.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.QueueResponses(path, response)
}

// QueueResponses scripts a sequence of responses for a path, served in
// order. The last response repeats for any further requests.
func (ms *MockServer) QueueResponses(path string, responses ...MockResponse) {
	if len(responses) == 0 {
		return
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.queues[path] = &responseQueue{responses: responses}
}

// GetRequestCount reports how many requests the server has received,
// including requests to unscripted paths.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.hits
}

func (ms *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.hits++
	queue, ok := ms.queues[r.URL.Path]
	var response MockResponse
	if ok {
		response = queue.pop()
	}
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}
	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(response.StatusCode)

	switch body := response.Body.(type) {
	case nil:
	case string:
		_, _ = w.Write([]byte(body))
	case []byte:
		_, _ = w.Write(body)
	default:
		_ = json.NewEncoder(w).Encode(body)
	}
}

// MockOpenAIResponse builds a chat completion payload in the OpenAI wire
// shape with a fixed 10/20 token split.
func MockOpenAIResponse(content, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-abacus1",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{{
			"index":         0,
			"message":       map[string]interface{}{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockAnthropicResponse builds a messages payload in the Anthropic wire
// shape with the same 10/20 token split as MockOpenAIResponse.
func MockAnthropicResponse(content, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":          "msg_abacus1",
		"type":        "message",
		"role":        "assistant",
		"model":       model,
		"stop_reason": "end_turn",
		"content": []map[string]interface{}{
			{"type": "text", "text": content},
		},
		"usage": map[string]interface{}{
			"input_tokens":  10,
			"output_tokens": 20,
		},
	}
}

// MockErrorResponse builds a provider error payload with the given status.
func MockErrorResponse(statusCode int, message string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
				"type":    "invalid_request_error",
				"code":    statusCode,
			},
		},
	}
}

// MockAuthError is a 401 reply. Adapters must not retry it.
func MockAuthError() MockResponse {
	return MockErrorResponse(http.StatusUnauthorized, "Invalid API key")
}

// MockRateLimitError is a 429 reply carrying a Retry-After header.
func MockRateLimitError(retryAfterSeconds int) MockResponse {
	response := MockErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded")
	response.Headers = map[string]string{
		"Retry-After": strconv.Itoa(retryAfterSeconds),
	}
	return response
}

// MockServerError is a 500 reply. Adapters retry it with backoff.
func MockServerError() MockResponse {
	return MockErrorResponse(http.StatusInternalServerError, "Internal server error")
}

// MockSlowResponse is a success reply delayed long enough to trip short
// client deadlines.
func MockSlowResponse(delay time.Duration, model string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       MockOpenAIResponse("late reply", model),
		Delay:      delay,
	}
}
