// Package cpu implements the Intcode decoder and machine.
//
// An instruction word holds its opcode in the two low decimal digits and one
// mode digit per read parameter above that, least significant first. Decode
// turns a word into a Code; Machine.Execute applies one Code to the machine's
// private memory. Destination parameters are always addresses.
//
// A Machine is a small state machine (running, awaiting-input, halted) driven
// by explicit Step calls, so that several machines can be composed and
// scheduled cooperatively by their caller.
package cpu
