package domain

import "math"

const (
	LinkCap    = 15
	LinkRadius = 120.0
	LinkAlpha  = 0.15
)

// Color is the particle and link colour (#2563eb).
var Color = RGB{R: 37, G: 99, B: 235}

type RGB struct {
	R, G, B uint8
}

type Bounds struct {
	W, H float64
}

func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// Rand is the subset of math/rand/v2 used for seeding.
type Rand interface {
	Float64() float64
}

// Seed creates n particles spread uniformly over b.
func Seed(r Rand, n int, b Bounds) []Particle {
	if n <= 0 {
		return nil
	}
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			X:       r.Float64() * b.W,
			Y:       r.Float64() * b.H,
			VX:      (r.Float64() - 0.5) * 0.5,
			VY:      (r.Float64() - 0.5) * 0.5,
			Radius:  r.Float64()*2 + 1,
			Opacity: r.Float64()*0.5 + 0.2,
		}
	}
	return out
}

// Step advances p by its velocity and wraps it to the opposite edge when it
// leaves b. Positions are never clamped.
func (p *Particle) Step(b Bounds) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 {
		p.X = b.W
	}
	if p.X > b.W {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = b.H
	}
	if p.Y > b.H {
		p.Y = 0
	}
}

type Link struct {
	A, B    int
	Opacity float64
}

// Links pairs the first LinkCap particles that lie closer than LinkRadius.
// Opacity falls off linearly with distance.
func Links(ps []Particle) []Link {
	n := min(len(ps), LinkCap)
	var out []Link
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < LinkRadius {
				out = append(out, Link{A: i, B: j, Opacity: (LinkRadius - d) / LinkRadius * LinkAlpha})
			}
		}
	}
	return out
}
