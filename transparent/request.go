package transparent

import "strconv"

// TransactionType selects how the gateway processes a transaction. The
// values are the literal trans_type wire strings.
type TransactionType string

const (
	TypeCredit       TransactionType = "CREDIT"
	TypeSales        TransactionType = "SALES"
	TypeAuthCapture  TransactionType = "AUTH_CAPTURE"
	TypeAuthOnly     TransactionType = "AUTH_ONLY"
	TypeReturn       TransactionType = "RETURN"
	TypeVoid         TransactionType = "VOID"
	TypePreviousSale TransactionType = "PREVIOUS_SALE"
)

// CVVType tells the gateway how to treat the CVV2 field.
type CVVType string

const (
	CVVNotPassing  CVVType = "0"
	CVVPassing     CVVType = "1"
	CVVUnreadable  CVVType = "2"
	CVVNoImprint   CVVType = "9"
)

// PaymentMethod is one of the two payment-instrument kinds the gateway
// supports: CreditCard or ElectronicFundsTransfer. The interface is sealed;
// the method decides which variant-specific wire fields get emitted.
type PaymentMethod interface {
	methodFields(f *paymentFields)
}

// CreditCard pays by card. Number, ExpirationMonth and ExpirationYear are
// required; CVV2 and CVVType are optional and omitted from the wire payload
// when empty.
type CreditCard struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	CVV2            string
	CVVType         CVVType
}

func (c CreditCard) methodFields(f *paymentFields) {
	f.TransMethod = String(TransMethodCC)
	f.CardNumber = String(c.Number)
	f.CardExpMonth = String(c.ExpirationMonth)
	f.CardExpYear = String(c.ExpirationYear)
	if c.CVV2 != "" {
		f.CVV2 = String(c.CVV2)
	}
	if c.CVVType != "" {
		f.CVVType = String(string(c.CVVType))
	}
}

// ElectronicFundsTransfer pays from a checking account.
type ElectronicFundsTransfer struct {
	ABA                   string
	CheckingAccountNumber string
}

func (e ElectronicFundsTransfer) methodFields(f *paymentFields) {
	f.TransMethod = String(TransMethodEFT)
	f.ABA = String(e.ABA)
	f.CheckingAccount = String(e.CheckingAccountNumber)
}

// Payment is the amount to capture and the instrument to capture it with.
// Amount is a decimal string ("100.00"); the gateway consumes everything as
// form-encoded text, so no numeric type survives the wire anyway.
type Payment struct {
	Amount string
	Method PaymentMethod
}

// Payer is the billing identity attached to the transaction.
type Payer struct {
	Address string
	Zip     string
	Email   string
	// Name defaults to "anonymous" when left empty.
	Name string
}

// Options are the optional behavioral flags of a transaction. Nil pointer
// fields are absent: they produce no wire field at all, leaving the
// gateway's account-level defaults in charge.
type Options struct {
	EmailCustomerReceipt *bool
	SendTransactionEmail *bool
	TransactionType      TransactionType
	TransactionID        string
	RestrictKey          string
	DataSeparator        string
	MaxMindOn            *bool
}

// RecurringOptions attaches the transaction to a recurring-billing recipe.
// RID is required whenever the struct is present.
type RecurringOptions struct {
	RID                    string
	RecurCycles            *int
	OverrideRecurringPrice *bool
	InitialAmount          string
	OverrideRecurringDay   *bool
}

// TransactionRequest is the aggregate unit of compilation and validation:
// a payment, a payer, and optionally behavioral and recurring options.
type TransactionRequest struct {
	Payment   Payment
	Payer     Payer
	Options   *Options
	Recurring *RecurringOptions
}

// The contribution structs below each hold a disjoint slice of the Payload.
// mergePayload fills every Payload field from exactly one contribution, so
// the disjointness of the merge is checked by the compiler rather than by
// write order.

type paymentFields struct {
	Amount          string
	TransMethod     *string
	CardNumber      *string
	CardExpMonth    *string
	CardExpYear     *string
	CVV2            *string
	CVVType         *string
	ABA             *string
	CheckingAccount *string
}

type payerFields struct {
	BillingAddress *string
	BillingZip     *string
	BillingEmail   *string
	BillingName    *string
}

type optionsFields struct {
	OverrideEmailCustomer *string
	OverrideTransEmail    *string
	TransType             *string
	TransID               *string
	RestrictKey           *string
	DataSeparator         *string
	MaxMind               *string
}

type recurringFields struct {
	RID              *string
	OverrideRecur    *string
	InitialAmount    *string
	RecurTimes       *string
	OverrideRecurDay *string
}

func (p Payment) fields() paymentFields {
	f := paymentFields{Amount: p.Amount}
	if p.Method != nil {
		p.Method.methodFields(&f)
	}
	return f
}

func (p Payer) fields() payerFields {
	name := p.Name
	if name == "" {
		name = "anonymous"
	}
	return payerFields{
		BillingAddress: String(p.Address),
		BillingZip:     String(p.Zip),
		BillingEmail:   String(p.Email),
		BillingName:    String(name),
	}
}

func (o *Options) fields() optionsFields {
	if o == nil {
		return optionsFields{}
	}
	f := optionsFields{
		OverrideEmailCustomer: yesNo(o.EmailCustomerReceipt),
		OverrideTransEmail:    yesNo(o.SendTransactionEmail),
		MaxMind:               oneTwo(o.MaxMindOn),
	}
	if o.TransactionType != "" {
		f.TransType = String(string(o.TransactionType))
	}
	if o.TransactionID != "" {
		f.TransID = String(o.TransactionID)
	}
	if o.RestrictKey != "" {
		f.RestrictKey = String(o.RestrictKey)
	}
	if o.DataSeparator != "" {
		f.DataSeparator = String(o.DataSeparator)
	}
	return f
}

func (r *RecurringOptions) fields() recurringFields {
	if r == nil {
		return recurringFields{}
	}
	f := recurringFields{
		RID:              String(r.RID),
		OverrideRecur:    yesNo(r.OverrideRecurringPrice),
		OverrideRecurDay: yesNo(r.OverrideRecurringDay),
	}
	if r.InitialAmount != "" {
		f.InitialAmount = String(r.InitialAmount)
	}
	if r.RecurCycles != nil {
		f.RecurTimes = String(strconv.Itoa(*r.RecurCycles))
	}
	return f
}

// Payload compiles the request into its wire form. Compilation never fails
// and never checks correctness; it only flattens. The gwlogin field is left
// empty because the sending engine injects its own account id, overwriting
// anything a caller might have put there.
func (r *TransactionRequest) Payload() *Payload {
	return mergePayload(r.Payment.fields(), r.Payer.fields(), r.Options.fields(), r.Recurring.fields())
}

func mergePayload(pay paymentFields, py payerFields, opt optionsFields, rec recurringFields) *Payload {
	return &Payload{
		Amount:          pay.Amount,
		TransMethod:     pay.TransMethod,
		CardNumber:      pay.CardNumber,
		CardExpMonth:    pay.CardExpMonth,
		CardExpYear:     pay.CardExpYear,
		CVV2:            pay.CVV2,
		CVVType:         pay.CVVType,
		ABA:             pay.ABA,
		CheckingAccount: pay.CheckingAccount,

		BillingAddress: py.BillingAddress,
		BillingZip:     py.BillingZip,
		BillingEmail:   py.BillingEmail,
		BillingName:    py.BillingName,

		OverrideEmailCustomer: opt.OverrideEmailCustomer,
		OverrideTransEmail:    opt.OverrideTransEmail,
		TransType:             opt.TransType,
		TransID:               opt.TransID,
		RestrictKey:           opt.RestrictKey,
		DataSeparator:         opt.DataSeparator,
		MaxMind:               opt.MaxMind,

		RID:              rec.RID,
		OverrideRecur:    rec.OverrideRecur,
		InitialAmount:    rec.InitialAmount,
		RecurTimes:       rec.RecurTimes,
		OverrideRecurDay: rec.OverrideRecurDay,
	}
}

// yesNo maps an optional domain boolean onto the gateway's "Y"/"N"
// sentinels; nil stays absent rather than defaulting to "N".
func yesNo(b *bool) *string {
	if b == nil {
		return nil
	}
	if *b {
		return String("Y")
	}
	return String("N")
}

// oneTwo is the same mapping for the fields that use "1"/"2" sentinels.
func oneTwo(b *bool) *string {
	if b == nil {
		return nil
	}
	if *b {
		return String("1")
	}
	return String("2")
}
