// Wheeler's delayed-choice experiment on a simulated Mach-Zehnder
// interferometer. The choice to insert the second beam splitter is made
// "after" the photon has passed the first one, yet the statistics always
// match the configuration present at detection time.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/fijjas/go-experiments/internal/quantum"
)

func main() {
	fmt.Println("Wheeler delayed choice, Mach-Zehnder")
	fmt.Println("------------------------------------")

	fmt.Println("\nclosed (second splitter in place), interference:")
	for i := 0; i <= 8; i++ {
		phase := float64(i) * math.Pi / 4
		dc := quantum.DelayedChoice{Phase: phase}

		p1, p2, err := dc.Probabilities(true)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  phase %4.2fπ  D1=%.4f  D2=%.4f\n", phase/math.Pi, p1, p2)
	}

	fmt.Println("\nopen (second splitter removed), which-path:")
	for i := 0; i <= 8; i += 2 {
		phase := float64(i) * math.Pi / 4
		dc := quantum.DelayedChoice{Phase: phase}

		p1, p2, err := dc.Probabilities(false)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  phase %4.2fπ  D1=%.4f  D2=%.4f\n", phase/math.Pi, p1, p2)
	}

	fmt.Println("\nThe phase only matters when the splitter is present at the end.")
}
