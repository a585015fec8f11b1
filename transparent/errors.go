package transparent

import (
	"fmt"
	"strings"
)

// ErrorCode classifies where in the transaction pipeline a failure happened.
type ErrorCode string

const (
	// ErrParse means the request was rejected by client-side validation
	// before any network call was made.
	ErrParse ErrorCode = "ERR_PARSE"
	// ErrServerResponse means the transport failed, or the gateway answered
	// with something that is neither an approval nor a parseable decline.
	ErrServerResponse ErrorCode = "ERR_SERVER_RESPONSE"
	// ErrServerDeclined means the gateway processed the transaction and
	// declined it.
	ErrServerDeclined ErrorCode = "ERR_SERVER_DECLINED"
)

// Issue is a single field-level or decision-level diagnostic attached to a
// TransactionError.
type Issue struct {
	Code    string
	Path    []string
	Message string

	// Response carries the full decoded gateway response on declined-
	// transaction issues so the decision can be audited. Nil otherwise.
	Response *TransactionResponse
}

// TransactionError is the one error type every failure path of the engine
// surfaces: validation failures, transport failures and gateway declines.
type TransactionError struct {
	Code    ErrorCode
	Message string
	Issues  []Issue
}

func (e *TransactionError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d issues)", e.Code, e.Message, len(e.Issues))
}

// String renders the error with every issue on its own line, for logs and
// CLI output.
func (e *TransactionError) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TransactionError\n")
	fmt.Fprintf(&b, "  code: %s\n", e.Code)
	fmt.Fprintf(&b, "  message: %q\n", e.Message)
	if len(e.Issues) == 0 {
		b.WriteString("  issues: []\n")
		return b.String()
	}
	b.WriteString("  issues:\n")
	for _, issue := range e.Issues {
		fmt.Fprintf(&b, "    - %s: %s", issue.Code, issue.Message)
		if len(issue.Path) > 0 {
			fmt.Fprintf(&b, " path: [%s]", strings.Join(issue.Path, "."))
		}
		b.WriteString("\n")
		if issue.Response != nil {
			b.WriteString("      serverResponse: TransactionResponse\n")
			for _, line := range strings.Split(strings.TrimRight(issue.Response.String(), "\n"), "\n") {
				fmt.Fprintf(&b, "      %s\n", line)
			}
		}
	}
	return b.String()
}
