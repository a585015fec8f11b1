package main

import (
	"flag"
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"github.com/phimar/qgw/gwsim"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	separator := flag.String("sep", "|", "data separator used in responses")
	htmlWrap := flag.Bool("html", false, "wrap responses in an HTML page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	config := gwsim.DefaultConfig()
	config.Separator = *separator
	config.HTMLWrap = *htmlWrap

	sim := gwsim.New(logger, config)

	logger.Info("gateway simulator listening", slog.String("addr", *addr))
	if err := http.ListenAndServe(*addr, sim.Router()); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
