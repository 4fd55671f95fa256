package sdmgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/sdmgo"
)

// A threshold of at least the address dimension activates every hard
// location, making this example deterministic for any seed.
func ExampleNew() {
	ctx := context.Background()

	mem, err := sdmgo.New(8, 4, 16, 8)
	if err != nil {
		panic(err)
	}

	address := []byte{1, 0, 1, 0, 1, 0, 1, 0}
	memory := []byte{1, 1, 0, 0}

	if err := mem.Write(ctx, address, memory); err != nil {
		panic(err)
	}

	recalled, err := mem.Read(ctx, address)
	if err != nil {
		panic(err)
	}

	fmt.Println(recalled)
	fmt.Println(mem.MemoryCount())
	// Output:
	// [1 1 0 0]
	// 1
}

func ExampleSDM_EraseMemory() {
	ctx := context.Background()

	mem, err := sdmgo.New(8, 4, 16, 8)
	if err != nil {
		panic(err)
	}

	address := []byte{0, 1, 0, 1, 0, 1, 0, 1}
	if err := mem.Write(ctx, address, []byte{1, 0, 1, 0}); err != nil {
		panic(err)
	}

	mem.EraseMemory(ctx)

	recalled, err := mem.Read(ctx, address)
	if err != nil {
		panic(err)
	}

	fmt.Println(recalled)
	fmt.Println(mem.MemoryCount())
	// Output:
	// [0 0 0 0]
	// 0
}
