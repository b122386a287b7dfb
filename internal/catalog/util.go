package catalog

func init() {
	register(&Entry{Name: "abs", Arity: 1, ExtraFPUSlots: 0, Code: []byte{0xd9, 0xe1}})  // fabs
	register(&Entry{Name: "sqrt", Arity: 1, ExtraFPUSlots: 0, Code: []byte{0xd9, 0xfa}}) // fsqrt

	register(&Entry{
		// sfc(x): the significand of x's base-2 decomposition (fxtract
		// leaves the significand on top of the exponent; this keeps it).
		Name: "sfc", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{0xd9, 0xf4, 0xdd, 0xd9}, // fxtract; fstp st(1)
	})
	register(&Entry{
		// expn(x): the exponent component of x's base-2 decomposition.
		Name: "expn", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{0xd9, 0xf4, 0xdd, 0xd8}, // fxtract; fstp st(0)
	})

	register(&Entry{
		Name: "sign", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{
			0xd9, 0xee, // fldz
			0xdf, 0xf1, // fcomip st, st(1)
			0xdd, 0xd8, // fstp st(0)
			0xd9, 0xe8, // fld1
			0xd9, 0xe8, // fld1
			0xd9, 0xe0, // fchs
			0xda, 0xc1, // fcmovb st, st(1)
			0xdd, 0xd9, // fstp st(1)
		},
	})
	register(&Entry{
		// signp(x): 1 when x > 0, otherwise 0.
		Name: "signp", Arity: 1, ExtraFPUSlots: 2,
		Code: []byte{
			0xd9, 0xe8, // fld1
			0xd9, 0xee, // fldz
			0xdb, 0xf2, // fcomi st, st(2)
			0xdd, 0xda, // fstp st(2)
			0xdb, 0xc1, // fcmovnb st, st(1)
			0xdd, 0xd9, // fstp st(1)
		},
	})

	register(&Entry{
		Name: "max", Arity: 2, ExtraFPUSlots: 0,
		Code: []byte{0xdb, 0xf1, 0xda, 0xc1, 0xdd, 0xd9}, // fcomi; fcmovb; fstp st(1)
	})
	register(&Entry{
		Name: "min", Arity: 2, ExtraFPUSlots: 0,
		Code: []byte{0xdb, 0xf1, 0xd9, 0xc9, 0xda, 0xc1, 0xdd, 0xd9}, // fcomi; fxch; fcmovb; fstp st(1)
	})
	register(&Entry{
		Name: "mod", Arity: 2, ExtraFPUSlots: 0,
		Code: []byte{0xd9, 0xc9, 0xd9, 0xf8, 0xdd, 0xd9}, // fxch; fprem; fstp st(1)
	})
	register(&Entry{
		Name: "less_than", Arity: 2, ExtraFPUSlots: 0,
		Code: []byte{
			0xdf, 0xf1, // fcomip st, st(1)
			0xdd, 0xd8, // fstp st(0)
			0xd9, 0xe8, // fld1
			0xd9, 0xee, // fldz
			0xdb, 0xd1, // fcmovnb st, st(1)
			0xdd, 0xd9, // fstp st(1)
		},
	})
	register(&Entry{
		// bnd(x, n): wraps x into [0, n) by a floored modulo.
		Name: "bnd", Arity: 2, ExtraFPUSlots: 2,
		Code: []byte{
			0xd9, 0xc9, // fxch st(1)
			0xd9, 0xf8, // fprem
			0xd9, 0xc0, // fld st(0)
			0xdc, 0xc2, // fadd st(2), st
			0xd9, 0xee, // fldz
			0xdf, 0xf1, // fcomip st, st(1)
			0xdd, 0xd8, // fstp st(0)
			0xdb, 0xd1, // fcmovnbe st, st(1)
			0xdd, 0xd9, // fstp st(1)
		},
	})
	register(&Entry{
		// gain(x, a): a signal-processing S-curve over x, a in [0, 1].
		Name: "gain", Arity: 2, ExtraFPUSlots: 2,
		Code: []byte{
			0xd9, 0xc1, 0xd8, 0xc2, 0xd9, 0xe8, 0xdf, 0xf1, 0xdd, 0xd8,
			0xd9, 0xc0, 0xd8, 0xc1, 0xd9, 0xe8, 0xde, 0xe9, 0xde, 0xf1,
			0xd9, 0xc1, 0xdc, 0xc0, 0xd9, 0xe8, 0xde, 0xe9, 0xde, 0xc9,
			0xd9, 0xe8, 0x72, 0x06,
			0xde, 0xc1, 0xde, 0xf9, 0xeb, 0x0a,
			0xd9, 0xc1, 0xde, 0xe9, 0xd9, 0xc9, 0xde, 0xea, 0xde, 0xf9,
		},
	})
	register(&Entry{
		// bias(x, a): shifts where the midpoint of x in [0, 1] falls.
		Name: "bias", Arity: 2, ExtraFPUSlots: 1,
		Code: []byte{
			0xd9, 0xe8, 0xdc, 0xf1, 0xdc, 0xe9, 0xdc, 0xe9,
			0xd8, 0xe2, 0xde, 0xc9, 0xd9, 0xe8, 0xde, 0xc1, 0xde, 0xf9,
		},
	})
}
