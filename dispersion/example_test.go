package dispersion_test

import (
	"errors"
	"fmt"

	"github.com/sartorproj/godispersion/dispersion"
)

func ExampleFTest() {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	y := []float64{1, 2, 3, 4, 5}

	res, err := dispersion.FTest(x, y, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("F=%.4f df=(%.0f, %.0f) p=%.4f\n", res.FValue, res.DFNum, res.DFDen, res.PValue)
	// Output: F=1.8286 df=(7, 4) p=0.2922
}

func ExampleFTest_zeroVariance() {
	_, err := dispersion.FTest([]float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1}, true)
	fmt.Println(errors.Is(err, dispersion.ErrZeroVariance))
	fmt.Println(err)
	// Output:
	// true
	// zero variance in denominator sample: F ratio 2.5/0 is undefined
}

func ExampleF1Test() {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	y := []float64{1, 2, 3, 4, 5}

	res, err := dispersion.F1Test(x, y, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("rx=%.2f ry=%.2f p=%.4f\n", res.RX, res.RY, res.PValue)
	// Output: rx=7.41 ry=4.21 p=0.3227
}

func ExampleCountFive() {
	x := []float64{1, 2, 3, 4, 100}
	y := []float64{10, 11, 12, 13, 14}

	res, err := dispersion.CountFive(x, y, "median")
	if err != nil {
		panic(err)
	}
	fmt.Println(res.ExtremeX, res.ExtremeY, res.Rejects())
	// Output: 1 0 false
}
