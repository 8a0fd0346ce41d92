package core

import (
	"math"
	"math/rand"
)

// RandomVec3 generates a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{
		X: random.Float64(),
		Y: random.Float64(),
		Z: random.Float64(),
	}
}

// RandomVec3Range generates a vector with each component uniform in [min, max)
func RandomVec3Range(minVal, maxVal float64, random *rand.Rand) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a random point inside a unit sphere
// using rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		// Accept if inside the sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed point on the unit
// sphere using the analytic azimuth/height parametrization
func RandomUnitVector(random *rand.Rand) Vec3 {
	a := 2 * math.Pi * random.Float64()
	z := 2*random.Float64() - 1
	r := math.Sqrt(1 - z*z)
	return Vec3{
		X: r * math.Cos(a),
		Y: r * math.Sin(a),
		Z: z,
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1, Z: 0}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a unit vector uv through a surface
// with unit normal n using Snell's law, where etaiOverEtat is the ratio of
// refractive indices across the boundary
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
