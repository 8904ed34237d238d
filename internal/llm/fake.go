package llm

import (
	"context"
	"iter"
)

// FakeClient returns scripted envelopes and deltas for offline tests.
// It records every request so tests can assert on call counts and on
// the exact request the orchestration built.
type FakeClient struct {
	Envelope  *Envelope
	Err       error
	Deltas    []string
	StreamErr error

	Calls       int
	StreamCalls int
	LastRequest *Request
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(_ context.Context, req *Request) (*Envelope, error) {
	f.Calls++
	f.LastRequest = req
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Envelope == nil {
		return &Envelope{}, nil
	}
	return f.Envelope, nil
}

func (f *FakeClient) GenerateStream(_ context.Context, req *Request) iter.Seq2[string, error] {
	f.StreamCalls++
	f.LastRequest = req
	return func(yield func(string, error) bool) {
		for _, d := range f.Deltas {
			if !yield(d, nil) {
				return
			}
		}
		if f.StreamErr != nil {
			yield("", f.StreamErr)
		}
	}
}
