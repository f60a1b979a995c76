package scene

import "math"

type Orbit struct {
	Distance float64
	Polar    float64
	Azimuth  float64

	MinDistance float64
	MaxDistance float64
	MinPolar    float64
	MaxPolar    float64
}

// DefaultOrbit looks at the origin from (0, 1, 3.5), never going below the floor.
func DefaultOrbit() Orbit {
	x, y, z := 0.0, 1.0, 3.5
	d := math.Sqrt(x*x + y*y + z*z)

	return Orbit{
		Distance:    d,
		Polar:       math.Acos(y / d),
		Azimuth:     math.Atan2(x, z),
		MinDistance: 2,
		MaxDistance: 8,
		MinPolar:    0,
		MaxPolar:    math.Pi / 2,
	}
}

func (o *Orbit) Zoom(delta float64) {
	o.Distance = clamp(o.Distance+delta, o.MinDistance, o.MaxDistance)
}

func (o *Orbit) Rotate(azimuth, polar float64) {
	o.Azimuth = math.Mod(o.Azimuth+azimuth, 2*math.Pi)
	o.Polar = clamp(o.Polar+polar, o.MinPolar, o.MaxPolar)
}

func (o *Orbit) Position() (float64, float64, float64) {
	sin := math.Sin(o.Polar)
	return o.Distance * sin * math.Sin(o.Azimuth),
		o.Distance * math.Cos(o.Polar),
		o.Distance * sin * math.Cos(o.Azimuth)
}

func clamp(v, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, v))
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
