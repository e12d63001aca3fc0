// Package types holds the shared vocabulary of the layout compiler: names,
// switch positions, the kmap-to-firmware permutation, chords, key presses,
// sequences and their types.
//
// Chords are always stored in firmware scan order. The only place kmap
// (visual) order exists is inside the kmap parser, which remaps every block
// through a Permutation before a Chord is created.
package types
