// Package lr35902 decodes opcodes of the Game Boy CPU (Sharp LR35902, also known as SM83).
//
// # Decoding
//
// Every byte value decodes to exactly one Opcode. Resolution happens in three steps:
//  1. a table of exact single byte opcodes is checked first,
//  2. the byte is split into its upper and lower nibble and an ordered list of nibble range
//     families is evaluated, the first matching family decodes the register or literal form,
//  3. bytes that match nothing decode to a literal 0xNN display without operand bytes.
//
// The order of the families matters, some nibble ranges overlap and earlier families win.
//
// # Operands
//
// An Opcode carries a typed operand slot instead of a template with placeholders:
//
//	NoOperand   no following byte
//	Immediate8  one byte, rendered as $XX
//	Relative8   one signed displacement byte, rendered as the absolute target $XXXX
//	SubOpcode   one byte following the 0xCB escape prefix, rendered as $XX
//	Address16   two bytes little-endian, rendered as $HHLL
//
// The 0xCB escape prefix is not decoded further, its sub opcode is displayed as is.
package lr35902
