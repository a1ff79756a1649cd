package xcover_test

import (
	"context"
	"fmt"
	"log"

	"github.com/dancecells/xcover"
)

// ExampleCovers demonstrates basic exact-cover enumeration.
func ExampleCovers() {
	options := [][]string{
		{"c", "e"},
		{"a", "d", "g"},
		{"b", "c", "f"},
		{"a", "d", "f"},
		{"b", "g"},
		{"d", "e", "g"},
	}

	solutions, err := xcover.Covers(context.Background(), options)
	if err != nil {
		log.Fatal(err)
	}
	for solution := range solutions {
		fmt.Println(solution)
	}
	// Output:
	// [0 3 4]
}

// ExampleVerify demonstrates checking a candidate solution.
func ExampleVerify() {
	options := [][]string{
		{"a", "b"},
		{"c"},
	}
	err := xcover.Verify([]int{0, 1}, options)
	fmt.Println(err)
	// Output:
	// <nil>
}
