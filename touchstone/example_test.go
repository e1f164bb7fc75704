package touchstone_test

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/touchstone"
)

func ExampleWrite() {
	n := sparam.NewNetwork()
	if err := n.Allocate(2); err != nil {
		panic(err)
	}

	deg := math.Pi / 180
	n.Param(1, 1).Append(sparam.Point{Frequency: 1e9, Amplitude: 0.1, Phase: 10 * deg})
	n.Param(2, 1).Append(sparam.Point{Frequency: 1e9, Amplitude: 0.9, Phase: -5 * deg})
	n.Param(1, 2).Append(sparam.Point{Frequency: 1e9, Amplitude: 0.9, Phase: -5 * deg})
	n.Param(2, 2).Append(sparam.Point{Frequency: 1e9, Amplitude: 0.1, Phase: 10 * deg})

	if err := touchstone.Write(os.Stdout, n); err != nil {
		panic(err)
	}

	// Output:
	// # GHz S MA R 50.000
	// 1.000000 0.100000 10.000000 0.900000 -5.000000 0.900000 -5.000000 0.100000 10.000000
}

func ExampleRead() {
	data := `# MHz S MA R 50.000
1000.000000 0.100000 10.000000 0.900000 -5.000000 0.900000 -5.000000 0.100000 10.000000
2000.000000 0.150000 20.000000 0.800000 -10.000000 0.800000 -10.000000 0.150000 20.000000
`

	n, err := touchstone.Read(strings.NewReader(data))
	if err != nil {
		panic(err)
	}

	s21 := n.Param(2, 1)
	fmt.Printf("S21 has %d points from %.0f MHz to %.0f MHz\n",
		s21.Len(), s21.At(0).Frequency*1e-6, s21.At(s21.Len()-1).Frequency*1e-6)

	// Output:
	// S21 has 2 points from 1000 MHz to 2000 MHz
}
