package gwsim

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func post(t *testing.T, sim *Simulator, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/cgi/tqgwdbe.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	sim.Router().ServeHTTP(rec, req)
	return rec
}

func newSim(config *Config) *Simulator {
	return New(slog.New(slog.NewTextHandler(io.Discard)), config)
}

func cardForm() url.Values {
	return url.Values{
		"gwlogin":      {"demo"},
		"trans_method": {"CC"},
		"amount":       {"100.00"},
		"ccnum":        {"4111111111111111"},
		"ccmo":         {"12"},
		"ccyr":         {"99"},
	}
}

func TestSimulator_Approves(t *testing.T) {
	rec := post(t, newSim(nil), cardForm())
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	fields := strings.Split(body, "|")
	require.Len(t, fields, 8)
	require.Equal(t, `"APPROVED"`, fields[0])
	require.Equal(t, `"1111"`, fields[6])
	require.Equal(t, `"VISA"`, fields[7])
}

func TestSimulator_DeclineTriggerAmount(t *testing.T) {
	form := cardForm()
	form.Set("amount", "0.05")

	rec := post(t, newSim(nil), form)

	fields := strings.Split(rec.Body.String(), "|")
	require.Len(t, fields, 8)
	require.Equal(t, `"DECLINED"`, fields[0])
	require.Equal(t, `"Auth Declined"`, fields[6])
	require.Equal(t, `"200"`, fields[7])
}

func TestSimulator_CustomSeparator(t *testing.T) {
	config := DefaultConfig()
	config.Separator = ","

	rec := post(t, newSim(config), cardForm())

	body := rec.Body.String()
	require.NotContains(t, body, "|")
	require.Equal(t, `"APPROVED"`, strings.Split(body, ",")[0])
}

func TestSimulator_HTMLWrap(t *testing.T) {
	config := DefaultConfig()
	config.HTMLWrap = true

	rec := post(t, newSim(config), cardForm())

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "<html>"))
	require.Contains(t, body, `"APPROVED"`)
	require.True(t, strings.HasSuffix(body, "</html>"))
}

func TestSimulator_MissingLoginGetsErrorPage(t *testing.T) {
	form := cardForm()
	form.Del("gwlogin")

	rec := post(t, newSim(nil), form)

	body := rec.Body.String()
	require.Contains(t, body, "Invalid Login")
	require.NotContains(t, body, "|")
}

func TestSimulator_CustomDeclineTable(t *testing.T) {
	config := DefaultConfig()
	config.DeclineAmounts["13.00"] = Decline{Reason: "Pick Up Card", ErrorCode: "204"}

	form := cardForm()
	form.Set("amount", "13.00")

	rec := post(t, newSim(config), form)

	fields := strings.Split(rec.Body.String(), "|")
	require.Equal(t, `"DECLINED"`, fields[0])
	require.Equal(t, `"Pick Up Card"`, fields[6])
	require.Equal(t, `"204"`, fields[7])
}
