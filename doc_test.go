package queryfn_test

import (
	"fmt"
	"iter"
	"strings"

	"github.com/KasperOmsK/queryfn"
)

type Item struct {
	ID string
}

type Event struct {
	Type  string
	Items []Item
}

// Example parses items from (fake) event files and batches the purchased ones.
func Example() {
	// Wrap iter.Seqs into Seqs and read both files one after the other.
	input := queryfn.From(IterateFile("events-2023.log")).
		Concat(queryfn.From(IterateFile("events-2024.log")))

	// Select applies transformations that cannot fail.
	trimmed := queryfn.Select(input, strings.TrimSpace)

	// TrySelect applies transformations that may fail. The first error ends
	// the traversal.
	events := queryfn.TrySelect(trimmed, ParseEvent)

	purchases := events.Where(func(e Event) bool {
		return e.Type == "purchase"
	})

	items := queryfn.SelectMany(purchases, func(e Event) queryfn.Seq[Item] {
		return queryfn.FromSlice(e.Items)
	})

	batches := queryfn.Chunk(items, 2)

	for batch, err := range batches.Results() {
		if err != nil {
			fmt.Println("pipeline error:", err)
			break
		}
		fmt.Println("batch:", batch)
	}
	// Output:
	// batch: [{1001} {1002}]
	// batch: [{1003} {1004}]
	// pipeline error: invalid event format: "invalid-line-without-colon"
}

func ExampleGroupBy() {
	words := queryfn.Of("apple", "avocado", "banana", "blueberry", "cherry")

	byLetter := queryfn.GroupBy(words, func(w string) byte { return w[0] })

	for g := range byLetter.Values() {
		fmt.Printf("%c: %d\n", g.Key(), g.Len())
	}
	// Output:
	// a: 2
	// b: 2
	// c: 1
}

func ExampleOrderBy() {
	words := queryfn.Of("kiwi", "fig", "banana", "date", "apple")

	byLength := queryfn.ThenBy(
		queryfn.OrderBy(words, func(w string) int { return len(w) }),
		func(w string) string { return w },
	)

	sorted, err := byLength.ToSlice()
	fmt.Println(sorted, err)
	// Output:
	// [fig date kiwi apple banana] <nil>
}

func ExampleSum() {
	_, err := queryfn.Sum(queryfn.Of[int32](2147483647, 1), queryfn.Int32, func(v int32) int32 { return v })
	fmt.Println(err != nil)

	avg, err := queryfn.Average(queryfn.Range(1, 4), queryfn.Int, func(v int) int { return v })
	fmt.Println(avg, err)
	// Output:
	// true
	// 2.5 <nil>
}

func IterateFile(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var lines []string

		switch path {
		case "events-2023.log":
			lines = []string{
				"purchase:1001,1002,1003",
				"refund:2001",
				"purchase:1004",
			}
		case "events-2024.log":
			lines = []string{
				" purchase:3001",
				"invalid-line-without-colon",
				"purchase:3003",
			}
		default:
			lines = []string{}
		}

		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

func ParseEvent(line string) (Event, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return Event{}, fmt.Errorf("invalid event format: %q", line)
	}

	eventType := strings.TrimSpace(parts[0])
	rawItems := strings.TrimSpace(parts[1])

	if rawItems == "" {
		return Event{}, fmt.Errorf("invalid event format: no items")
	}

	var items []Item
	for _, id := range strings.Split(rawItems, ",") {
		items = append(items, Item{
			ID: strings.TrimSpace(id),
		})
	}

	return Event{
		Type:  eventType,
		Items: items,
	}, nil
}
