package frontier_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnav/frontier"
)

// ExampleHeap shows insert, decrease-key and extraction order.
func ExampleHeap() {
	h := frontier.New[string]()
	_ = h.SetScore("A", 5)
	_ = h.SetScore("B", 2)
	_ = h.SetScore("C", 8)

	v, _ := h.Pop()
	fmt.Println("pop:", v)

	// C was queued at 8; lowering it moves it to the front.
	_ = h.SetScore("C", 1)
	for !h.IsEmpty() {
		e, _ := h.PopEntry()
		fmt.Printf("pop: %s (%.0f)\n", e.Element, e.Score)
	}
	// Output:
	// pop: B
	// pop: C (1)
	// pop: A (5)
}

// ExampleHeap_Score shows that scores stay readable after extraction.
func ExampleHeap_Score() {
	h := frontier.New[string]()
	_ = h.SetScore("A", 10)
	_ = h.SetScore("A", 3)
	fmt.Println("size:", h.Len())

	_, _ = h.Pop()
	s, _ := h.Score("A")
	fmt.Println("score after pop:", s, "size:", h.Len())

	_, err := h.Score("Z")
	fmt.Println(errors.Is(err, frontier.ErrNotFound))
	// Output:
	// size: 1
	// score after pop: 3 size: 0
	// true
}
