/*
Package jornada is an adaptive onboarding engine: a branching questionnaire
that walks a user through personal, financial and business questions and
turns the final answers into a profile with recommendations.

The flow is a graph of question nodes contributed by modules. Each node
declares the answer keys it writes, how it is presented and a pure resolver
that picks the next node from the answers given so far. The engine keeps the
projected path up to date as answers change, so progress, back navigation and
branch changes stay consistent.

# Concept

The engine owns the state transitions; the host owns I/O. A Session keeps one
flow state and one answer store. The host records answers, asks to advance or
go back, and renders the current node however it likes: a terminal prompt, an
HTTP API or an MCP tool. When the profile node is reached, CompleteFlow runs
the classifier on the final snapshot.

# Key Features

  - Typed answers: every key is declared by a node and validated on write.
  - Pure routing: resolvers are functions of the answer snapshot only.
  - Explicit state: FlowState values can be persisted and resumed.
  - Pluggable derivation: the in-process rule tables or any ports.Classifier.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/jornada"
	)

	func main() {
		engine, err := jornada.New() // classic onboarding catalog
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		s := engine.NewSession("")
		if err := s.Start(ctx); err != nil {
			log.Fatal(err)
		}

		_ = s.RecordAnswer(ctx, "personalInterests", []string{"health"})
		res, err := s.Advance(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome, s.Progress())
	}
*/
package jornada
