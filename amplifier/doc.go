// Package amplifier composes five Intcode machines into an amplifier network.
//
// Each machine runs its own copy of the same program and first receives a
// phase setting. The networks are connected by one queue per edge: machine n
// reads edge n and writes edge n+1. In the linear topology a single pass,
// seeded with a zero signal, produces the output signal. In the feedback
// topology the output of the last machine is fed back to the first one until
// the last machine halts.
//
// Machines are scheduled cooperatively: exactly one machine runs at a time,
// until it suspends for input or halts.
package amplifier
