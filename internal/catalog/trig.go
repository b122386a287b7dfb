package catalog

func init() {
	register(&Entry{Name: "sin", Arity: 1, ExtraFPUSlots: 0, Code: []byte{0xd9, 0xfe}}) // fsin
	register(&Entry{Name: "cos", Arity: 1, ExtraFPUSlots: 0, Code: []byte{0xd9, 0xff}}) // fcos
	register(&Entry{
		Name: "tan", Arity: 1, ExtraFPUSlots: 1,
		Code: []byte{0xd9, 0xf2, 0xdd, 0xd8}, // fptan; fstp st(0)
	})
}
