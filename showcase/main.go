// Package main is a small demo of the progress-indicators widget set.
package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/drift"
)

func main() {
	drift.NewApp(App()).Run()
}

// App returns the root widget of the demo.
func App() core.Widget {
	return DemoApp{}
}

// DemoApp hosts the single demo page.
type DemoApp struct {
	core.StatelessBase
}

func (DemoApp) Build(ctx core.BuildContext) core.Widget {
	return buildIndicatorsPage(ctx)
}
