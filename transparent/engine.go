package transparent

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/slog"

	"github.com/phimar/qgw/internal/cardbrand"
)

// DefaultPostURL is the production endpoint of the Transparent Database
// Engine.
const DefaultPostURL = "https://secure.quantumgateway.com/cgi/tqgwdbe.php"

// Config configures an Engine.
type Config struct {
	// PostURL is the gateway endpoint; DefaultPostURL when empty.
	PostURL string
	// Lenient disables client-side validation: malformed requests are sent
	// to the gateway as-is and whatever comes back is classified normally.
	// Validation is a pre-flight optimization, not a security boundary.
	Lenient bool
	// Timeout bounds the transport call of the default poster.
	Timeout time.Duration
	// Poster overrides the transport collaborator. When nil a plain
	// net/http poster is used.
	Poster Poster
}

// DefaultConfig returns the configuration for the production gateway with
// strict validation.
func DefaultConfig() *Config {
	return &Config{
		PostURL: DefaultPostURL,
		Timeout: 30 * time.Second,
	}
}

// Engine submits transactions to the Transparent Database Engine. It is
// little more than a well-mannered POST: compile, validate, encode, send,
// decode. An Engine is immutable after construction and safe for
// concurrent use; each Send is an independent single flow with no retries
// and no shared state.
type Engine struct {
	gatewayLogin string
	postURL      string
	lenient      bool
	poster       Poster
	logger       *slog.Logger
}

// NewEngine builds an engine bound to a gateway account. gatewayLogin is
// the Quantum Gateway account id; it is stamped into every outgoing payload
// regardless of what the caller put there. A nil config means
// DefaultConfig.
func NewEngine(logger *slog.Logger, gatewayLogin string, config *Config) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		config = DefaultConfig()
	}
	postURL := config.PostURL
	if postURL == "" {
		postURL = DefaultPostURL
	}
	poster := config.Poster
	if poster == nil {
		poster = newHTTPPoster(config.Timeout)
	}
	return &Engine{
		gatewayLogin: gatewayLogin,
		postURL:      postURL,
		lenient:      config.Lenient,
		poster:       poster,
		logger:       logger.With(slog.String("component", "qgw-engine")),
	}
}

// Send compiles the request and submits it. On approval it returns the
// decoded response; every failure path returns a *TransactionError whose
// code says whether the request never left the client (ERR_PARSE), the
// gateway gave no decision (ERR_SERVER_RESPONSE), or the gateway declined
// (ERR_SERVER_DECLINED).
func (e *Engine) Send(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, &TransactionError{Code: ErrParse, Message: "nil transaction request"}
	}
	return e.SendPayload(ctx, req.Payload())
}

// SendPayload submits a caller-built wire payload, for direct access to the
// raw field set. It behaves exactly like Send; a compiled payload and a
// hand-built one go through the same validation.
func (e *Engine) SendPayload(ctx context.Context, p *Payload) (*TransactionResponse, error) {
	if p == nil {
		return nil, &TransactionError{Code: ErrParse, Message: "nil payload"}
	}

	// Copy before stamping the account id so the caller's payload is not
	// mutated. Callers cannot spoof another account through the payload.
	payload := *p
	payload.GatewayLogin = e.gatewayLogin

	if !e.lenient {
		if issues := Validate(&payload); len(issues) > 0 {
			e.logger.Info("rejecting transaction before transmission",
				slog.Int("issues", len(issues)))
			return nil, &TransactionError{
				Code:    ErrParse,
				Message: "transaction request failed validation",
				Issues:  issues,
			}
		}
	}

	e.logger.Info("submitting transaction",
		slog.String("amount", payload.Amount),
		slog.String("ccnum", cardbrand.Mask(deref(payload.CardNumber))))

	raw, err := e.poster.Post(ctx, e.postURL, payload.Values())
	if err != nil {
		return nil, e.classifyTransportError(err)
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		var terr *TransactionError
		if errors.As(err, &terr) {
			return nil, terr
		}
		return nil, &TransactionError{Code: ErrServerResponse, Message: err.Error()}
	}

	if !resp.Approved() {
		e.logger.Info("transaction declined",
			slog.String("transID", resp.TransID),
			slog.String("reason", resp.Decline.Reason))
		return nil, &TransactionError{
			Code:    ErrServerDeclined,
			Message: resp.Decline.Reason,
			Issues: []Issue{{
				Code:     "server_declined",
				Message:  resp.Decline.Reason,
				Response: resp,
			}},
		}
	}

	e.logger.Info("transaction approved", slog.String("transID", resp.TransID))
	return resp, nil
}

// classifyTransportError wraps a transport failure as ERR_SERVER_RESPONSE.
// If the gateway's error body itself holds a decodable response record, it
// is decoded and attached for diagnostics.
func (e *Engine) classifyTransportError(err error) *TransactionError {
	e.logger.Error("gateway transport failed", slog.Any("err", err))

	var terr *TransportError
	if !errors.As(err, &terr) {
		return &TransactionError{
			Code:    ErrServerResponse,
			Message: err.Error(),
			Issues:  []Issue{{Code: "transport", Message: err.Error()}},
		}
	}

	if resp, derr := ParseResponse(terr.Body); derr == nil {
		issue := Issue{Code: "transport", Message: terr.Error(), Response: resp}
		msg := terr.Error()
		if resp.Decline != nil {
			msg = resp.Decline.Reason
		}
		return &TransactionError{Code: ErrServerResponse, Message: msg, Issues: []Issue{issue}}
	}

	return &TransactionError{
		Code:    ErrServerResponse,
		Message: terr.Error(),
		Issues:  []Issue{{Code: "transport", Message: terr.Error()}},
	}
}
