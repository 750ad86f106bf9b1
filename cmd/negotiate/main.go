// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ezrec/yieldgen/driver"
	"github.com/ezrec/yieldgen/negotiate"
	"github.com/ezrec/yieldgen/translate"
)

var f = translate.From

func main() {
	var url string
	var limit = uint32Value{value: negotiate.DefaultLimit}
	var fallback string
	var challenge string
	var script string
	var value uint32Value
	var sessions int
	var parallel int
	var timeout time.Duration
	var lang string
	var verbose bool

	flag.StringVar(&url, "url", negotiate.DefaultUrl, "Kerberos request target")
	flag.Var(&limit, "limit", "Largest value Kerberos accepts")
	flag.StringVar(&fallback, "fallback", "ntlm", "Fallback mechanism: ntlm or digest")
	flag.StringVar(&challenge, "challenge", "", "Digest challenge")
	flag.StringVar(&script, "script", "", ".star file defining respond(event)")
	flag.Var(&value, "value", "Answer HttpRequest with SomeValue(n) instead of a payload")
	flag.IntVar(&sessions, "n", 1, "Number of negotiations")
	flag.IntVar(&parallel, "j", 0, "Concurrent negotiations (0 for unlimited)")
	flag.DurationVar(&timeout, "timeout", 0, "Abandon negotiations after this long")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocales(lang)
	}

	cfg := negotiate.DefaultConfig()
	cfg.Url = url
	cfg.Limit = limit.value
	cfg.Fallback = fallback
	cfg.Challenge = []byte(challenge)
	cfg.Verbose = verbose

	n, err := negotiate.NewNegotiator(cfg)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var responder driver.Responder[negotiate.Event, negotiate.Response]
	if len(script) != 0 {
		responder, err = driver.LoadScript(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	} else {
		static := &driver.Static{}
		if value.given {
			static.Payload = negotiate.SomeValue(value.value)
		}
		responder = static
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var list []driver.Session
	for range sessions {
		list = append(list, driver.Session{
			Generator: n.Begin(),
			Responder: responder,
		})
	}

	outcomes, err := driver.RunAll(ctx, parallel, list)

	failed := false
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed = true
			log.Print(f("%v: %v", outcome.Id, outcome.Err))
			continue
		}
		log.Print(f("%v: %v in %d steps", outcome.Id, outcome.Result, outcome.Steps))
	}

	if err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}
