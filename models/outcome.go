package models

// OutcomeKind is the terminal result of an authentication attempt
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFail    OutcomeKind = "fail"
	OutcomeError   OutcomeKind = "error"
)

// Info carries the details the verify function attaches to its decision
type Info map[string]interface{}

// Outcome is what an authentication attempt resolved to.
// Fail means the credentials were not accepted; Error means no decision
// could be made.
type Outcome struct {
	Kind OutcomeKind
	User interface{}
	Info Info
	Err  error
}

// Success builds a success outcome
func Success(user interface{}, info Info) Outcome {
	return Outcome{Kind: OutcomeSuccess, User: user, Info: info}
}

// Fail builds a fail outcome
func Fail(info Info) Outcome {
	return Outcome{Kind: OutcomeFail, Info: info}
}

// Failure builds an error outcome
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeError, Err: err}
}

// Message returns the "message" entry of the info, if any
func (i Info) Message() string {
	if msg, ok := i["message"].(string); ok {
		return msg
	}
	return ""
}

// Reason returns the "reason" entry of the info, if any
func (i Info) Reason() string {
	if reason, ok := i["reason"].(string); ok {
		return reason
	}
	return ""
}
