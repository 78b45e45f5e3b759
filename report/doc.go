// Package report collects evaluated matrix exercises under a header and
// renders them as terminal text, printable HTML or JSON.
//
// A Report owns exercise numbering: Add appends exercise Len()+1, Remove
// renumbers what is left, Clear starts over. Two-operand exercises are named
// after their operation; longer expressions are an operation chain with one
// stage per operator.
//
// Rendering:
//
//	Inputs print with two decimals and computed values with four, trailing
//	zeros trimmed. Cell (i, j) of every grid gets color (i*cols+j) mod 10,
//	where cols is the width of the grid the cell belongs to (the final
//	result for inputs), so a result cell and its derivation share a color.
//
// Text is localized through golang.org/x/text catalogs loaded from the
// embedded locales/*.toml files; Spanish is the default.
package report
