package bitvec_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/alloc"
	"github.com/hupe1980/bitvec/resource"
)

// ExampleNewSize demonstrates seeding a vector with a bit pattern.
func ExampleNewSize() {
	v, err := bitvec.NewSize(12, bitvec.WithPattern(0xFF))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	fmt.Println(v.String(), v.Count())
	// Output: 111111110000 8
}

// ExampleBitVector_PushBack demonstrates amortized growth.
func ExampleBitVector_PushBack() {
	v := bitvec.New()
	defer v.Close()

	for i := range 65 {
		if err := v.PushBack(i%2 == 0); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(v.Size(), v.Capacity(), v.Count())
	// Output: 65 16 33
}

// ExampleBitVector_Not demonstrates complement.
func ExampleBitVector_Not() {
	v, _ := bitvec.NewSize(12, bitvec.WithPattern(0xFF))
	n, err := v.Not()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n)
	// Output: 000000001111
}

// ExampleAnd demonstrates the non-mutating boolean operators.
func ExampleAnd() {
	a, _ := bitvec.Parse("1100")
	b, _ := bitvec.Parse("1010")

	and, _ := bitvec.And(a, b)
	or, _ := bitvec.Or(a, b)
	xor, _ := bitvec.Xor(a, b)

	fmt.Println(and, or, xor)
	// Output: 1000 1110 0110
}

// ExampleWithAllocator demonstrates a memory budget on the backing storage.
func ExampleWithAllocator() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1024})
	v := bitvec.New(bitvec.WithAllocator(alloc.NewLimited(alloc.Heap{}, rc)))
	defer v.Close()

	if err := v.Reserve(100); err != nil {
		log.Fatal(err)
	}
	fmt.Println(rc.MemoryUsage())

	err := v.Reserve(2000)
	fmt.Println(err != nil)
	// Output:
	// 100
	// true
}
