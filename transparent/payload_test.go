package transparent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValues_OmitsAbsentFields(t *testing.T) {
	p := &Payload{
		GatewayLogin: "g",
		Amount:       "1.00",
	}

	v := p.Values()
	require.Equal(t, "g", v.Get("gwlogin"))
	require.Equal(t, "1.00", v.Get("amount"))
	require.Len(t, v, 2)
}

func TestValues_KeepsPresentButEmptyFields(t *testing.T) {
	// Absent and empty are different things on this wire: an empty Dsep is
	// still sent, a nil one is not.
	p := &Payload{
		GatewayLogin:  "g",
		Amount:        "1.00",
		DataSeparator: String(""),
	}

	v := p.Values()
	_, ok := v["Dsep"]
	require.True(t, ok)
	require.Equal(t, "", v.Get("Dsep"))
}

func TestValues_PercentEncodes(t *testing.T) {
	p := &Payload{
		GatewayLogin:   "g",
		Amount:         "1.00",
		BillingAddress: String("1 Main St & Co, Apt #2"),
		BillingEmail:   String("a+b@example.com"),
	}

	encoded := p.Values().Encode()
	require.NotContains(t, encoded, " ")
	require.NotContains(t, encoded, "#")
	require.Contains(t, encoded, "BADDR1=")
	require.Contains(t, encoded, "a%2Bb%40example.com")
}
