// Command sdfview renders 2D signed distance field scenes described in YAML
// as text, PNG images or annotated plots.
//
//	sdfview text --scene scene.yaml --mapper fill
//	sdfview image --scene scene.yaml --mapper redblue --supersample 4 --out field.png
//	sdfview plot --out contour.png
//
// Without --scene the built-in demonstration scene is rendered.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
