package printing

import (
	"fmt"
	"io"
)

func Report(w io.Writer, n int) {
	fmt.Fprintf(w, "processed %d\n", n)
	fmt.Printf("processed %d\n", n) // want `fmt.Printf writes to stdout`
	fmt.Println("done")             // want `fmt.Println writes to stdout`
	msg := fmt.Sprint(n)
	println(msg) // want `builtin println writes to stderr`
}

func Quiet() {
	fmt.Print("ok") //nolint:noprint

	//nolint:lint
	print("tolerated")
}
