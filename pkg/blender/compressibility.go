package blender

import (
	"math"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

const (
	convergence   = 0.000001
	maxIterations = 1000
)

// virial coefficients of the compressibility factor
var (
	o2Coefficients = [3]float64{-7.18092073703e-4, 2.81852572808e-6, -1.50290620492e-9}
	n2Coefficients = [3]float64{-2.19260353292e-4, 2.92844845532e-6, -2.07613482075e-9}
	heCoefficients = [3]float64{4.87320026468e-4, -8.83632921053e-8, 5.33304543646e-11}
)

func virial(p float64, c [3]float64) float64 {
	return c[0]*p + c[1]*p*p + c[2]*p*p*p
}

// zFactor is the compressibility factor of the mix at pressure p (bar)
func zFactor(p float64, g gases.Gas) float64 {
	return 1 +
		g.FO2*virial(p, o2Coefficients) +
		g.FHe*virial(p, heCoefficients) +
		g.FN2()*virial(p, n2Coefficients)
}

// normalVolumeFactor is the volume at surface pressure per liter of cylinder
func normalVolumeFactor(p float64, g gases.Gas) float64 {
	return p * zFactor(1, g) / zFactor(p, g)
}

// findPressure returns the cylinder pressure holding volume per liter of the mix
func findPressure(g gases.Gas, volume float64) (float64, error) {
	p := volume
	for range maxIterations {
		if math.Abs(zFactor(1, g)*p-zFactor(p, g)*volume) <= convergence {
			return p, nil
		}
		p = volume * zFactor(p, g) / zFactor(1, g)
	}
	return 0, ErrNoConvergence
}
