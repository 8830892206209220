// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/mamdani/engine"
	"github.com/katalvlaran/mamdani/finance"
)

const banner = `
====================================================
               WELCOME TO THE

           FINANCIAL AFFORDABILITY AND
                RISK ASSESSMENT TOOL
====================================================

`

// money groups thousands: 12,345.60.
var money = message.NewPrinter(language.English)

func writeReport(w io.Writer, a finance.Applicant, res finance.Assessment) {
	fmt.Fprintln(w, "\n====================== Test Case ======================")
	fmt.Fprintln(w, "  Inputs:")
	money.Fprintf(w, "    Disposable Income   : $ %.2f\n", a.DisposableIncome)
	money.Fprintf(w, "    Item Price          : $ %.2f\n", a.ItemPrice)
	money.Fprintf(w, "    Savings             : $ %.2f\n", a.Savings)
	fmt.Fprintf(w, "    Credit Score        :   %g\n", a.CreditScore)
	fmt.Fprintln(w, "\n======================= Results =======================")
	fmt.Fprintf(w, "  Computed Affordability Index : %s\n", res.Affordability)
	fmt.Fprintf(w, "  Computed Financial Risk Level: %s\n", res.Risk)
	fmt.Fprintln(w, "=======================================================")
}

func writeTrace(w io.Writer, e *engine.Engine, tr *engine.Trace) {
	fmt.Fprintln(w, "\n  Degrees:")
	for _, v := range e.Inputs() {
		fmt.Fprintf(w, "    %-18s", v.Name())
		d := tr.Degrees[v.Name()]
		for _, name := range v.TermNames() {
			if d[name] > 0 {
				fmt.Fprintf(w, " %s=%.3f", name, d[name])
			}
		}
		fmt.Fprintln(w)
	}

	fired := tr.Fired()
	fmt.Fprintf(w, "\n  Fired rules (%d of %d):\n", len(fired), len(tr.Rules))
	for _, a := range fired {
		label := a.Label
		if label == "" {
			label = fmt.Sprintf("#%d", a.Index)
		}
		fmt.Fprintf(w, "    %-10s %.3f  %s\n", label, a.Strength, a.Rule)
	}
	fmt.Fprintln(w, "=======================================================")
}
