// Package transparent is a client for Quantum Gateway's Transparent
// Database Engine, the gateway's non-interactive form-post API.
//
// A transaction is described with the typed TransactionRequest model,
// compiled into the gateway's flat wire field set, validated against the
// business rules the gateway only enforces server-side, form-encoded,
// posted, and the pipe-delimited response decoded back into a typed
// TransactionResponse. Declines, transport failures and validation
// failures all surface as *TransactionError with a machine-readable code
// and field-level issues.
//
//	engine := transparent.NewEngine(logger, "mylogin", nil)
//	resp, err := engine.Send(ctx, &transparent.TransactionRequest{
//		Payment: transparent.Payment{
//			Amount: "19.99",
//			Method: transparent.CreditCard{
//				Number:          "4111111111111111",
//				ExpirationMonth: "12",
//				ExpirationYear:  "28",
//				CVV2:            "999",
//			},
//		},
//		Payer: transparent.Payer{
//			Address: "123 Cheese St",
//			Zip:     "90210",
//			Email:   "payer@example.com",
//		},
//	})
package transparent
