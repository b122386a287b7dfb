package catalog

// floor, ceil and round all temporarily load a control word that fixes
// the x87 rounding mode for one frndint, then restore the caller's
// control word; int uses whatever rounding mode is already in effect
// (round-to-nearest-even, per the FPU's default).
func init() {
	register(&Entry{
		Name: "floor", Arity: 1, ExtraFPUSlots: 0,
		Code: []byte{
			0x66, 0xc7, 0x44, 0x24, 0xfc, 0x7f, 0x06, // mov word ptr [esp-4], 067fh (round down)
			0xd9, 0x7c, 0x24, 0xfe, // fnstcw word ptr [esp-2]
			0xd9, 0x6c, 0x24, 0xfc, // fldcw word ptr [esp-4]
			0xd9, 0xfc, // frndint
			0xd9, 0x6c, 0x24, 0xfe, // fldcw word ptr [esp-2]
		},
	})
	register(&Entry{
		Name: "ceil", Arity: 1, ExtraFPUSlots: 0,
		Code: []byte{
			0x66, 0xc7, 0x44, 0x24, 0xfc, 0x7f, 0x0a, // mov word ptr [esp-4], 0a7fh (round up)
			0xd9, 0x7c, 0x24, 0xfe,
			0xd9, 0x6c, 0x24, 0xfc,
			0xd9, 0xfc,
			0xd9, 0x6c, 0x24, 0xfe,
		},
	})
	register(&Entry{
		Name: "round", Arity: 1, ExtraFPUSlots: 0,
		Code: []byte{
			0x66, 0xc7, 0x44, 0x24, 0xfc, 0x7f, 0x02, // mov word ptr [esp-4], 027fh (round nearest)
			0xd9, 0x7c, 0x24, 0xfe,
			0xd9, 0x6c, 0x24, 0xfc,
			0xd9, 0xfc,
			0xd9, 0x6c, 0x24, 0xfe,
		},
	})
	register(&Entry{
		Name: "int", Arity: 1, ExtraFPUSlots: 0,
		Code: []byte{0xd9, 0xfc}, // frndint
	})
}
