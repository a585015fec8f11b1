package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"github.com/phimar/qgw/transparent"
)

func main() {
	login := flag.String("login", "", "gateway account login (required)")
	postURL := flag.String("url", transparent.DefaultPostURL, "gateway endpoint")
	lenient := flag.Bool("lenient", false, "skip client-side validation")

	amount := flag.String("amount", "", "transaction amount, e.g. 19.99")
	ccnum := flag.String("ccnum", "", "credit card number")
	ccmo := flag.String("ccmo", "", "expiration month (MM)")
	ccyr := flag.String("ccyr", "", "expiration year (YY)")
	cvv := flag.String("cvv", "", "card security code")
	aba := flag.String("aba", "", "EFT routing number (use instead of card flags)")
	checkacct := flag.String("checkacct", "", "EFT checking account number")

	address := flag.String("address", "", "billing address")
	zip := flag.String("zip", "", "billing zip")
	email := flag.String("email", "", "billing email")
	name := flag.String("name", "", "billing name")

	timeout := flag.Duration("timeout", 30*time.Second, "overall send timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr))

	if *login == "" {
		fmt.Fprintln(os.Stderr, "-login is required")
		os.Exit(2)
	}

	var method transparent.PaymentMethod
	if *aba != "" || *checkacct != "" {
		method = transparent.ElectronicFundsTransfer{
			ABA:                   *aba,
			CheckingAccountNumber: *checkacct,
		}
	} else {
		method = transparent.CreditCard{
			Number:          *ccnum,
			ExpirationMonth: *ccmo,
			ExpirationYear:  *ccyr,
			CVV2:            *cvv,
		}
	}

	req := &transparent.TransactionRequest{
		Payment: transparent.Payment{Amount: *amount, Method: method},
		Payer: transparent.Payer{
			Address: *address,
			Zip:     *zip,
			Email:   *email,
			Name:    *name,
		},
	}

	engine := transparent.NewEngine(logger, *login, &transparent.Config{
		PostURL: *postURL,
		Lenient: *lenient,
		Timeout: *timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := engine.Send(ctx, req)
	if err != nil {
		var terr *transparent.TransactionError
		if errors.As(err, &terr) {
			fmt.Fprint(os.Stderr, terr.String())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	fmt.Print(resp.String())
}
