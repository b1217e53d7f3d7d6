package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/galois/inclose"
	"github.com/katalvlaran/galois/internal/fixtures"
	"github.com/katalvlaran/galois/lattice"
)

// ExampleExtentIntersection builds the Hasse diagram of the
// living-beings-and-water lattice and prints it level by level.
func ExampleExtentIntersection() {
	fc := fixtures.LiveInWater.MustContext()
	concepts, err := inclose.Enumerate(fc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cover, err := lattice.ExtentIntersection(concepts, fc, lattice.WithExtentTrie())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	levels, err := lattice.Levels(cover)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", cover.EdgeCount())
	for d, layer := range levels.Layers() {
		fmt.Println(d, layer)
	}
	fmt.Println("below top:", cover.Children[cover.Top()])
	// Output:
	// edges: 32
	// 0 [0]
	// 1 [1 2 3 4]
	// 2 [5 6 7 11 12 16 17]
	// 3 [8 9 10 13 14 15]
	// 4 [18]
	// below top: [1 2 3 4]
}

// ExampleNaive shows that both builders agree on the digit display lattice.
func ExampleNaive() {
	fc := fixtures.Digits.MustContext()
	concepts, _ := inclose.Enumerate(fc)

	naive, _ := lattice.Naive(concepts)
	fast, _ := lattice.ExtentIntersection(concepts, fc)

	same := naive.EdgeCount() == fast.EdgeCount()
	for i := range naive.Children {
		same = same && fmt.Sprint(naive.Children[i]) == fmt.Sprint(fast.Children[i])
	}
	fmt.Println(len(concepts), naive.EdgeCount(), same)
	// Output:
	// 48 120 true
}
