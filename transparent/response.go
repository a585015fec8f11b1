package transparent

import (
	"fmt"
	"regexp"
	"strings"
)

// Result values of field 0 of a gateway response record. Anything else
// means the gateway answered with an error page instead of a decision.
const (
	ResultApproved = "APPROVED"
	ResultDeclined = "DECLINED"
)

// Positional indexes of the pipe-delimited response record. Positions 6 and
// 7 are reused: decline reason and error code on DECLINED, last-four digits
// and card brand on APPROVED. That asymmetry is the gateway's, not ours.
const (
	fieldResult = iota
	fieldAuthCode
	fieldTransID
	fieldAVRResponse
	fieldCVVResponse
	fieldMaxScore
	fieldTailA
	fieldTailB
)

// Approval carries the fields the gateway returns only on approved
// transactions.
type Approval struct {
	Last4Digits        string
	CreditCardProvider string
}

// Decline carries the fields the gateway returns only on declined
// transactions.
type Decline struct {
	Reason    string
	ErrorCode string
}

// TransactionResponse is the decoded gateway decision. Exactly one of
// Approval and Decline is set, matching Result.
type TransactionResponse struct {
	Result      string
	AuthCode    string
	TransID     string
	AVRResponse string
	CVVResponse string
	MaxScore    string

	Approval *Approval
	Decline  *Decline
}

// Approved reports whether the gateway approved the transaction.
func (r *TransactionResponse) Approved() bool { return r.Result == ResultApproved }

// String renders the response one field per line, omitting the tail fields
// that do not apply to the outcome.
func (r *TransactionResponse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "result: %s\n", r.Result)
	fmt.Fprintf(&b, "authCode: %s\n", r.AuthCode)
	fmt.Fprintf(&b, "transID: %s\n", r.TransID)
	fmt.Fprintf(&b, "avrResponse: %s\n", r.AVRResponse)
	fmt.Fprintf(&b, "cvvResponse: %s\n", r.CVVResponse)
	fmt.Fprintf(&b, "maxScore: %s\n", r.MaxScore)
	if r.Decline != nil {
		fmt.Fprintf(&b, "declineReason: %s\n", r.Decline.Reason)
		fmt.Fprintf(&b, "errorCode: %s\n", r.Decline.ErrorCode)
	}
	if r.Approval != nil {
		fmt.Fprintf(&b, "last4Digits: %s\n", r.Approval.Last4Digits)
		fmt.Fprintf(&b, "creditCardProvider: %s\n", r.Approval.CreditCardProvider)
	}
	return b.String()
}

var (
	bodyRe = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
	tagRe  = regexp.MustCompile(`<[^>]*>`)
)

// ParseResponse decodes the raw response text of the gateway into a
// TransactionResponse. The gateway serves the record as text/html: it may
// arrive bare, wrapped in markup, or embedded in a page, so any body block
// is extracted and remaining tags are stripped before splitting.
//
// Only the pipe separator is supported. An account configured with a
// different data separator produces a response this decoder rejects with
// ERR_SERVER_RESPONSE rather than guessing at the delimiter.
func ParseResponse(raw string) (*TransactionResponse, error) {
	text := raw
	if m := bodyRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	text = tagRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if !strings.Contains(text, "|") {
		return nil, &TransactionError{
			Code:    ErrServerResponse,
			Message: fmt.Sprintf("gateway response contains no field separator: %q", text),
		}
	}

	parts := strings.Split(text, "|")
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = cleanField(part)
	}
	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	result := at(fieldResult)
	if result != ResultApproved && result != ResultDeclined {
		return nil, &TransactionError{
			Code:    ErrServerResponse,
			Message: "gateway did not provide an APPROVED or DECLINED result",
		}
	}

	resp := &TransactionResponse{
		Result:      result,
		AuthCode:    at(fieldAuthCode),
		TransID:     at(fieldTransID),
		AVRResponse: at(fieldAVRResponse),
		CVVResponse: at(fieldCVVResponse),
		MaxScore:    at(fieldMaxScore),
	}

	if result == ResultDeclined {
		resp.Decline = &Decline{
			Reason:    at(fieldTailA),
			ErrorCode: at(fieldTailB),
		}
	} else {
		resp.Approval = &Approval{
			Last4Digits:        at(fieldTailA),
			CreditCardProvider: at(fieldTailB),
		}
	}

	return resp, nil
}

// cleanField trims whitespace and strips one layer of surrounding quotes.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
