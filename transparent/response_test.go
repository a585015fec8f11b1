package transparent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse_Approved(t *testing.T) {
	raw := `"APPROVED"|"604151"|"87646222"|""|"M"|""|"5454"|"MC"`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)

	require.Equal(t, "APPROVED", resp.Result)
	require.True(t, resp.Approved())
	require.Equal(t, "604151", resp.AuthCode)
	require.Equal(t, "87646222", resp.TransID)
	require.Equal(t, "", resp.AVRResponse)
	require.Equal(t, "M", resp.CVVResponse)
	require.Equal(t, "", resp.MaxScore)

	require.NotNil(t, resp.Approval)
	require.Equal(t, "5454", resp.Approval.Last4Digits)
	require.Equal(t, "MC", resp.Approval.CreditCardProvider)
	require.Nil(t, resp.Decline)
}

func TestParseResponse_Declined(t *testing.T) {
	raw := `"DECLINED"|"019452"|"65735"|"Y"|"M"|"0.3"|"Auth Declined"|"200"`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)

	require.Equal(t, "DECLINED", resp.Result)
	require.False(t, resp.Approved())

	require.NotNil(t, resp.Decline)
	require.Equal(t, "Auth Declined", resp.Decline.Reason)
	require.Equal(t, "200", resp.Decline.ErrorCode)
	require.Nil(t, resp.Approval)
}

func TestParseResponse_HTMLWrapped(t *testing.T) {
	raw := `<html><head><title>tqgwdbe</title></head><body>"APPROVED"|"604151"|"87646222"|""|"M"|""|"5454"|"MC"</body></html>`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "APPROVED", resp.Result)
	require.Equal(t, "5454", resp.Approval.Last4Digits)
}

func TestParseResponse_InlineMarkupWithoutBody(t *testing.T) {
	raw := `<pre>"DECLINED"|"1"|"2"|""|""|""|"Auth Declined"|"200"</pre>`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "DECLINED", resp.Result)
	require.Equal(t, "Auth Declined", resp.Decline.Reason)
}

func TestParseResponse_UnquotedAndWhitespace(t *testing.T) {
	raw := " APPROVED | 604151 |87646222| | M | |5454|MC \n"

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "604151", resp.AuthCode)
	require.Equal(t, "MC", resp.Approval.CreditCardProvider)
}

func TestParseResponse_ShortRecordFillsEmptyTail(t *testing.T) {
	raw := `"APPROVED"|"019452"|"65735"|"Y"|"M"|"0.3"`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "0.3", resp.MaxScore)
	require.Equal(t, "", resp.Approval.Last4Digits)
	require.Equal(t, "", resp.Approval.CreditCardProvider)
}

func TestParseResponse_ExtraFieldsIgnored(t *testing.T) {
	raw := `"APPROVED"|"604151"|"87646222"|""|"M"|""|"5454"|"MC"|"0"`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "MC", resp.Approval.CreditCardProvider)
}

func TestParseResponse_NoSeparator(t *testing.T) {
	_, err := ParseResponse("<html><body><h1>Invalid Login</h1></body></html>")
	require.Error(t, err)

	var terr *TransactionError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, ErrServerResponse, terr.Code)
}

func TestParseResponse_DifferentSeparatorRejected(t *testing.T) {
	// An account configured with a comma separator produces a record this
	// decoder deliberately refuses.
	_, err := ParseResponse(`"APPROVED","604151","87646222","","M","","5454","MC"`)

	var terr *TransactionError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, ErrServerResponse, terr.Code)
}

func TestParseResponse_UnknownResult(t *testing.T) {
	_, err := ParseResponse(`"ERROR"|"bad merchant config"`)

	var terr *TransactionError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, ErrServerResponse, terr.Code)
	require.Contains(t, terr.Message, "APPROVED or DECLINED")
}

func TestTransactionResponse_String(t *testing.T) {
	approved, err := ParseResponse(`"APPROVED"|"AUTH123"|"TRANS456"|"AVR123"|"M"|"0.5"|"5454"|"VISA"`)
	require.NoError(t, err)

	s := approved.String()
	require.Contains(t, s, "result: APPROVED")
	require.Contains(t, s, "authCode: AUTH123")
	require.Contains(t, s, "transID: TRANS456")
	require.Contains(t, s, "last4Digits: 5454")
	require.Contains(t, s, "creditCardProvider: VISA")
	require.NotContains(t, s, "declineReason")
	require.NotContains(t, s, "errorCode")

	declined, err := ParseResponse(`"DECLINED"|"AUTH123"|"TRANS456"|"AVR123"|"N"|"0.5"|"Insufficient funds"|"201"`)
	require.NoError(t, err)

	s = declined.String()
	require.Contains(t, s, "result: DECLINED")
	require.Contains(t, s, "declineReason: Insufficient funds")
	require.Contains(t, s, "errorCode: 201")
	require.NotContains(t, s, "last4Digits")
	require.NotContains(t, s, "creditCardProvider")
}
