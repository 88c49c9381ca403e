package nfa_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/adapters/memory"
	"github.com/aretw0/nfa/pkg/dsl"
	"github.com/aretw0/nfa/pkg/report"
)

// ExampleNew shows the built-in reference automaton.
func ExampleNew() {
	checker, err := nfa.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, line := range []string{"", "aaa", "cc", "d"} {
		fmt.Printf("%q: %v\n", line, checker.Accept(ctx, line))
	}

	// Output:
	// "": true
	// "aaa": true
	// "cc": true
	// "d": false
}

// ExampleNew_dsl builds an automaton in code and runs a batch through the text reporter.
func ExampleNew_dsl() {
	// Binary strings whose second-to-last symbol is 1.
	b := dsl.New(0).Accept(2)
	b.From(0).OnAny("01", 0).On('1', 1)
	b.From(1).OnAny("01", 2)

	checker, err := nfa.New(nfa.WithEngine("second-to-last", b.Build()))
	if err != nil {
		log.Fatal(err)
	}

	r := checker.Runner(report.NewTextReporter(os.Stdout))
	if _, err := r.Run(context.Background(), memory.NewSource("batch", "10", "0110", "01")); err != nil {
		log.Fatal(err)
	}

	// Output:
	// 10: Accepted
	// 0110: Accepted
	// 01: Rejected
	// Passed tests for file: 2 out of 3
}
