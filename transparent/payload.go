package transparent

import "net/url"

// Trans method values for the trans_method wire field.
const (
	TransMethodCC  = "CC"
	TransMethodEFT = "EFT"
)

// Payload is the flat, all-string record the Transparent Database Engine
// consumes: one struct field per documented wire field, named and cased the
// way the gateway documents them (form tags). Optional wire fields are
// pointers so that an absent field and an empty field stay distinct; only
// gwlogin and amount are unconditionally required by the gateway.
//
// A Payload can be built by hand for direct, low-level access to the wire
// protocol, or compiled from a TransactionRequest. Either way it carries no
// guarantees by itself; Validate is the single place correctness is checked.
type Payload struct {
	GatewayLogin string  `form:"gwlogin" validate:"required"`
	TransMethod  *string `form:"trans_method" validate:"omitempty,oneof=CC EFT"`
	TransType    *string `form:"trans_type" validate:"omitempty,oneof=CREDIT SALES AUTH_CAPTURE AUTH_ONLY RETURN VOID PREVIOUS_SALE"`
	TransID      *string `form:"transID"`

	CardNumber   *string `form:"ccnum"`
	CardExpMonth *string `form:"ccmo"`
	CardExpYear  *string `form:"ccyr"`

	ABA             *string `form:"aba"`
	CheckingAccount *string `form:"checkacct"`

	Amount string `form:"amount" validate:"required,amount"`

	BillingAddress *string `form:"BADDR1" validate:"required"`
	BillingZip     *string `form:"BZIP1" validate:"required"`
	BillingEmail   *string `form:"BCUST_EMAIL" validate:"required,email"`
	BillingName    *string `form:"BNAME"`

	OverrideEmailCustomer *string `form:"override_email_customer" validate:"omitempty,oneof=Y N"`
	OverrideTransEmail    *string `form:"override_trans_email" validate:"omitempty,oneof=Y N"`
	RestrictKey           *string `form:"RestrictKey"`
	CVV2                  *string `form:"CVV2" validate:"omitempty,cvv"`
	CVVType               *string `form:"CVVtype" validate:"omitempty,oneof=0 1 2 9"`
	DataSeparator         *string `form:"Dsep"`
	MaxMind               *string `form:"MAXMIND" validate:"omitempty,oneof=1 2"`

	OverrideRecur    *string `form:"override_recur" validate:"omitempty,oneof=Y N"`
	RID              *string `form:"RID" validate:"omitempty,intstring"`
	InitialAmount    *string `form:"initial_amount" validate:"omitempty,amountstring"`
	RecurTimes       *string `form:"recur_times" validate:"omitempty,intstring"`
	OverrideRecurDay *string `form:"OverRideRecureDay" validate:"omitempty,oneof=Y N"`
}

// Values serializes the payload into form values ready for an
// application/x-www-form-urlencoded POST body. Absent (nil) fields are
// omitted entirely; present-but-empty fields are kept, since the gateway
// distinguishes the two.
func (p *Payload) Values() url.Values {
	v := url.Values{}
	set := func(key string, val *string) {
		if val != nil {
			v.Set(key, *val)
		}
	}

	v.Set("gwlogin", p.GatewayLogin)
	v.Set("amount", p.Amount)

	set("trans_method", p.TransMethod)
	set("trans_type", p.TransType)
	set("transID", p.TransID)
	set("ccnum", p.CardNumber)
	set("ccmo", p.CardExpMonth)
	set("ccyr", p.CardExpYear)
	set("aba", p.ABA)
	set("checkacct", p.CheckingAccount)
	set("BADDR1", p.BillingAddress)
	set("BZIP1", p.BillingZip)
	set("BCUST_EMAIL", p.BillingEmail)
	set("BNAME", p.BillingName)
	set("override_email_customer", p.OverrideEmailCustomer)
	set("override_trans_email", p.OverrideTransEmail)
	set("RestrictKey", p.RestrictKey)
	set("CVV2", p.CVV2)
	set("CVVtype", p.CVVType)
	set("Dsep", p.DataSeparator)
	set("MAXMIND", p.MaxMind)
	set("override_recur", p.OverrideRecur)
	set("RID", p.RID)
	set("initial_amount", p.InitialAmount)
	set("recur_times", p.RecurTimes)
	set("OverRideRecureDay", p.OverrideRecurDay)

	return v
}

// Bool returns a pointer to b, for filling optional tri-state fields.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for filling optional wire fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for filling optional numeric fields.
func Int(i int) *int { return &i }
