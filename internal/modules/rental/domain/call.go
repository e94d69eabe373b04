package domain

// BackendCall describes one outbound GET against the rental API. Key names the
// slot the outcome fills in the page's view data and labels log entries.
type BackendCall struct {
	Key   string
	Path  string
	Query map[string]string
}

// CallOutcome is the result of executing one BackendCall: either Body holds the
// decoded JSON value or Err holds the failure cause, never both. Outcomes are
// plain values built once by the orchestrator and read-only afterwards.
type CallOutcome struct {
	Call BackendCall
	Body any
	Err  error
}

// Failed reports whether the call produced no usable body.
func (o CallOutcome) Failed() bool {
	return o.Err != nil
}

// FailReason returns the human-readable failure cause, or "" on success.
func (o CallOutcome) FailReason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
