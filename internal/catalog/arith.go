package catalog

func init() {
	register(&Entry{
		Name: "add", Arity: 2, ExtraFPUSlots: 0,
		Code:      []byte{0xde, 0xc1}, // faddp st(1), st
		Optimizer: foldMemoryOperand(0x00, 0x00),
	})
	register(&Entry{
		Name: "sub", Arity: 2, ExtraFPUSlots: 0,
		Code:      []byte{0xde, 0xe9}, // fsubp st(1), st
		Optimizer: foldMemoryOperand(0x20, 0x28),
	})
	register(&Entry{
		Name: "mul", Arity: 2, ExtraFPUSlots: 0,
		Code:      []byte{0xde, 0xc9}, // fmulp st(1), st
		Optimizer: foldMemoryOperand(0x08, 0x08),
	})
	register(&Entry{
		Name: "div", Arity: 2, ExtraFPUSlots: 0,
		Code:      []byte{0xde, 0xf9}, // fdivp st(1), st
		Optimizer: foldMemoryOperand(0x30, 0x38),
	})
	register(&Entry{
		Name: "neg", Arity: 1, ExtraFPUSlots: 0,
		Code: []byte{0xd9, 0xe0}, // fchs
	})
	register(&Entry{
		// Generic base^exponent. An integer exponent of magnitude 1..32
		// is applied by repeated multiplication (then inverted when
		// negative), so a zero base with such a negative exponent gives
		// +Inf. Every other exponent takes the fyl2x-based path, which
		// leaves zero on the stack for a zero base and, for a negative
		// base, computes |base|^exponent and negates it - both are
		// implementation-defined, matching the reference this design is
		// modeled on rather than IEEE-754 pow semantics.
		Name: "pow", Arity: 2, ExtraFPUSlots: 1,
		Code: []byte{
			0xd9, 0xc0, // fld st(0)
			0xd9, 0xfc, // frndint
			0xd8, 0xd1, // fcom st(1)
			0xdf, 0xe0, // fnstsw ax
			0x9e,       // sahf
			0x75, 0x3c, // jne pop_before_generic_pow

			0xd9, 0xe1, // fabs
			0x66, 0xc7, 0x44, 0x24, 0xfe, 0xff, 0xff, // mov word ptr [esp-2], 0ffffh
			0xdf, 0x5c, 0x24, 0xfe, // fistp word ptr [esp-2]
			0x66, 0x8b, 0x44, 0x24, 0xfe, // mov ax, word ptr [esp-2]
			0x66, 0x83, 0xe8, 0x01, // sub ax, 1
			0x66, 0x83, 0xf8, 0x1f, // cmp ax, 1fh
			0x77, 0x22, // ja generic_pow

			0xd9, 0xc1, // fld st(1)
			// loop_start:
			0x66, 0x85, 0xc0, // test ax, ax
			0x74, 0x08, // je loop_end
			0xdc, 0xca, // fmul st(2), st
			0x66, 0x83, 0xe8, 0x01, // sub ax, 1
			0xeb, 0xf3, // jmp loop_start
			// loop_end:
			0xdd, 0xd8, // fstp st(0)
			0xd9, 0xe4, // ftst
			0xdf, 0xe0, // fnstsw ax
			0x9e,       // sahf
			0xdd, 0xd8, // fstp st(0)
			0x77, 0x28, // ja exit_point

			0xd9, 0xe8, // fld1
			0xde, 0xf1, // fdivrp st(1), st
			0xeb, 0x22, // jmp exit_point

			// pop_before_generic_pow:
			0xdd, 0xd8, // fstp st(0)
			// generic_pow:
			0xd9, 0xc9, // fxch
			0xd9, 0xe4, // ftst
			0x9b,       // wait
			0xdf, 0xe0, // fnstsw ax
			0x9e,       // sahf
			0x74, 0x14, // je store_and_exit
			0xd9, 0xe1, // fabs
			0xd9, 0xf1, // fyl2x
			0xd9, 0xe8, // fld1
			0xd9, 0xc1, // fld st(1)
			0xd9, 0xf8, // fprem
			0xd9, 0xf0, // f2xm1
			0xde, 0xc1, // faddp st(1), st
			0xd9, 0xfd, // fscale
			0x77, 0x02, // ja store_and_exit
			0xd9, 0xe0, // fchs
			// store_and_exit:
			0xdd, 0xd9, // fstp st(1)
			// exit_point:
		},
		Optimizer: specializeIntegerPower,
	})
}
