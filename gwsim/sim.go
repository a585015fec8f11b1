// Package gwsim is a local stand-in for the Transparent Database Engine:
// it accepts the gateway's form field set and answers with the same
// quote-wrapped, pipe-delimited records the real endpoint produces. It
// exists so the client can be exercised end to end without a merchant
// account, including the gateway's awkward corners (HTML-wrapped bodies,
// non-pipe separators, error pages with no record at all).
package gwsim

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/phimar/qgw/internal/cardbrand"
)

// Config controls how the simulator renders responses.
type Config struct {
	// Separator between response fields. The real gateway uses the
	// account's configured data separator; default "|".
	Separator string
	// HTMLWrap wraps the record in an HTML page the way the live gateway
	// often does.
	HTMLWrap bool
	// DeclineAmounts maps magic amounts to a decline, mimicking sandbox
	// trigger amounts. Defaults to {"0.05": {"Auth Declined", "200"}}.
	DeclineAmounts map[string]Decline
}

// Decline is a canned decline outcome.
type Decline struct {
	Reason    string
	ErrorCode string
}

// DefaultConfig returns a pipe-separated, bare-text simulator with the
// standard decline trigger.
func DefaultConfig() *Config {
	return &Config{
		Separator: "|",
		DeclineAmounts: map[string]Decline{
			"0.05": {Reason: "Auth Declined", ErrorCode: "200"},
		},
	}
}

// Simulator serves the gateway protocol over HTTP.
type Simulator struct {
	logger *slog.Logger
	config *Config
}

func New(logger *slog.Logger, config *Config) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.Separator == "" {
		config.Separator = "|"
	}
	return &Simulator{
		logger: logger.With(slog.String("app", "gwsim")),
		config: config,
	}
}

// Router mounts the engine endpoint at the same path as the production
// gateway.
func (s *Simulator) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/cgi/tqgwdbe.php", s.handleTransaction)
	return r
}

func (s *Simulator) handleTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := r.PostForm
	login := form.Get("gwlogin")
	amount := form.Get("amount")

	s.logger.Info("transaction received",
		slog.String("gwlogin", login),
		slog.String("amount", amount),
		slog.String("trans_method", form.Get("trans_method")),
		slog.String("ccnum", cardbrand.Mask(form.Get("ccnum"))))

	w.Header().Set("Content-Type", "text/html")

	// Like the real engine: a missing login gets an error page, not a
	// response record.
	if login == "" {
		fmt.Fprint(w, "<html><body><h1>Invalid Login</h1></body></html>")
		return
	}

	transID := fmt.Sprintf("%d", uuid.New().ID())
	authCode := fmt.Sprintf("%06d", uuid.New().ID()%1_000_000)

	var record []string
	if d, ok := s.config.DeclineAmounts[amount]; ok {
		record = []string{"DECLINED", authCode, transID, "Y", "N", "0.5", d.Reason, d.ErrorCode}
	} else {
		last4 := cardbrand.LastN(form.Get("ccnum"), 4)
		provider := string(cardbrand.Detect(form.Get("ccnum")))
		record = []string{"APPROVED", authCode, transID, "Y", "M", "0.5", last4, provider}
	}

	body := s.render(record)
	if s.config.HTMLWrap {
		body = "<html><head><title>tqgwdbe</title></head><body>" + body + "</body></html>"
	}
	fmt.Fprint(w, body)
}

func (s *Simulator) render(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + f + `"`
	}
	return strings.Join(quoted, s.config.Separator)
}
