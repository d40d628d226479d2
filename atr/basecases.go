package atr

import "github.com/katalvlaran/atrgraph/randomgraph"

// computableDimension is the largest vertex count with a closed-form
// reliability polynomial below.
const computableDimension = 5

// calculateComputableDimensionGraph evaluates the exact reliability
// polynomial for graphs of computableDimension vertices or fewer. These
// expressions are reproduced exactly from the reference implementation and
// must stay byte-identical to it; do not simplify or re-derive them.
func calculateComputableDimensionGraph(g *randomgraph.Graph) float64 {
	switch n := g.NumVertices(); n {
	case 0, 1:
		return 1

	case 2:
		return g.At(0, 1)

	case 3:
		p12 := g.At(0, 1)
		p13 := g.At(0, 2)
		p23 := g.At(1, 2)
		return p12*p13*p23 +
			(1-p12)*p13*p23 +
			p12*(1-p13)*p23 +
			p12*p13*(1-p23)

	case 4:
		_a := 1 - g.At(0, 1)
		_b := 1 - g.At(1, 2)
		_c := 1 - g.At(2, 3)
		_d := 1 - g.At(0, 3)
		_e := 1 - g.At(1, 3)
		_f := 1 - g.At(0, 2)
		return 1 -
			6*_a*_b*_c*_d*_e*_f -
			_a*_b*_e -
			_a*_d*_f -
			_b*_c*_f -
			_c*_d*_e +
			2*(_b*_d*_e*_f*(_a+_c-0.5)+
				_a*_c*_e*_f*(_b+_d-0.5)+
				_a*_b*_c*_d*(_e+_f-0.5))

	case 5:
		return calculateFiveVertexGraph(g)

	default:
		panic("atr: calculateComputableDimensionGraph called on a non-computable graph")
	}
}

func calculateFiveVertexGraph(g *randomgraph.Graph) float64 {
	a := g.At(0, 1)
	b := g.At(0, 2)
	c := g.At(0, 3)
	d := g.At(0, 4)
	e := g.At(1, 2)
	f := g.At(1, 3)
	gg := g.At(1, 4)
	h := g.At(2, 3)
	u := g.At(2, 4)
	v := g.At(3, 4)

	_a := 1 - a
	_b := 1 - b
	_c := 1 - c
	_d := 1 - d
	_e := 1 - e
	_f := 1 - f
	_g := 1 - gg
	_h := 1 - h
	_u := 1 - u
	_v := 1 - v

	k1 := 1 - _e*(_f*_g+_h*_u)
	k2 := 1 - _h*(_b*_u+_c*_v)
	k3 := 1 - _v*(_c*_f+_d*_g)
	k4 := 1 - _d*(_a*_b+_g*_u)
	k5 := 1 - _a*(_b*_c+_e*_f)
	k6 := a*h*u + a*v*(h*_u+_h*u) + _a*_h*_u*(1-4*_v)
	k7 := c*d*e + e*v*(c*_d+_c*d) + _d*_e*_v
	k8 := a*d*h + gg*h*(a*_d+_a*d) + _a*_h*_g
	k9 := a*b*v + e*v*(a*_b+_a*b) + _a*_e*_v
	k10 := e*d*f + d*h*(e*_f+_e*f) + _d*_f*_h
	k11 := b*f*gg + b*v*(f*_g+_f*gg) + _b*_g*_v
	k12 := c*e*gg + c*u*(e*_g+_e*gg) + _c*_e*_u
	k13 := b*d*f + f*u*(b*_d+_b*d) + _b*_d*_f
	k14 := b*c*gg + gg*h*(b*_c+_b*c) + _b*_c*_g
	k15 := a*c*u + f*u*(a*_c+_a*c) + _c*_f*_u

	return 1 -
		_b*_c*(_a*_d*k1+_f*_e*(_d*_g*k6+_u*_v*k8)) -
		_f*_g*(_a*_e*k2+_h*_u*(_a*_b*k7+_c*_d*k9)) -
		_b*_h*(_e*_u*k3+_d*_v*(_a*_f*k12+_e*_g*k15)) -
		_c*_v*(_f*_h*k4+_a*_g*(_b*_u*k10+_e*_h*k13)) -
		_d*_u*(_g*_v*k5+_a*_e*(_c*_h*k11+_f*_v*k14))
}
