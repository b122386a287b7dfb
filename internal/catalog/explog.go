package catalog

func init() {
	register(&Entry{
		Name: "exp", Arity: 1, ExtraFPUSlots: 2,
		Code: []byte{
			0xd9, 0xea, // fldl2e
			0xde, 0xc9, // fmulp st(1), st
			0xd9, 0xe8, // fld1
			0xd9, 0xc1, // fld st(1)
			0xd9, 0xf8, // fprem
			0xd9, 0xf0, // f2xm1
			0xde, 0xc1, // faddp st(1), st
			0xd9, 0xfd, // fscale
			0xdd, 0xd9, // fstp st(1)
		},
	})

	ln := []byte{
		0xd9, 0xe8, // fld1
		0xd9, 0xc9, // fxch st(1)
		0xd9, 0xf1, // fyl2x
		0xd9, 0xea, // fldl2e
		0xde, 0xf9, // fdivp st(1), st
	}
	register(&Entry{Name: "ln", Arity: 1, ExtraFPUSlots: 1, Code: ln})
	// log is a plain alias of ln, kept separate only because C's math.h
	// calls it that; the byte template is identical.
	register(&Entry{Name: "log", Arity: 1, ExtraFPUSlots: 1, Code: append([]byte{}, ln...)})

	register(&Entry{
		Name: "log10", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{
			0xd9, 0xe8, // fld1
			0xd9, 0xc9, // fxch st(1)
			0xd9, 0xf1, // fyl2x
			0xd9, 0xe9, // fldl2t
			0xde, 0xf9, // fdivp st(1), st
		},
	})
	register(&Entry{
		Name: "log2", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{
			0xd9, 0xe8, // fld1
			0xd9, 0xc9, // fxch st(1)
			0xd9, 0xf1, // fyl2x
		},
	})
	register(&Entry{
		Name: "ylog2", Arity: 2, ExtraFPUSlots: 0,
		Code: []byte{0xd9, 0xf1}, // fyl2x: computes y*log2(x)
	})
}
